package answer

func FromNew(na NewAnswer) Answer {
	return Answer{Text: na.Text, IsCorrect: na.IsCorrect, QuestionID: na.QuestionID}
}

func FromUpdate(ua UpdateAnswer) Answer {
	return Answer{ID: ua.ID, Text: ua.Text, IsCorrect: ua.IsCorrect, QuestionID: ua.QuestionID}
}

func ToDTO(a Answer) AnswerDTO {
	return AnswerDTO{ID: a.ID, Text: a.Text, IsCorrect: a.IsCorrect, QuestionID: a.QuestionID}
}

func ToDTOs(answers []Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, 0, len(answers))
	for _, a := range answers {
		dtos = append(dtos, ToDTO(a))
	}
	return dtos
}
