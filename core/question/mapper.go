package question

func FromNew(nq NewQuestion) Question {
	return Question{Text: nq.Text, ExamID: nq.ExamID}
}

func FromUpdate(uq UpdateQuestion) Question {
	return Question{ID: uq.ID, Text: uq.Text, ExamID: uq.ExamID}
}

func ToDTO(q Question) QuestionDTO {
	return QuestionDTO{ID: q.ID, Text: q.Text, ExamID: q.ExamID}
}

func ToDTOs(questions []Question) []QuestionDTO {
	dtos := make([]QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, ToDTO(q))
	}
	return dtos
}
