package exam

func FromNew(ne NewExam) Exam {
	return Exam{Title: ne.Title, SubjectID: ne.SubjectID, ScheduledAt: ne.ScheduledAt}
}

func FromUpdate(ue UpdateExam) Exam {
	return Exam{ID: ue.ID, Title: ue.Title, SubjectID: ue.SubjectID, ScheduledAt: ue.ScheduledAt}
}

func ToDTO(e Exam) ExamDTO {
	return ExamDTO{ID: e.ID, Title: e.Title, SubjectID: e.SubjectID, ScheduledAt: e.ScheduledAt}
}

func ToDTOs(exams []Exam) []ExamDTO {
	dtos := make([]ExamDTO, 0, len(exams))
	for _, e := range exams {
		dtos = append(dtos, ToDTO(e))
	}
	return dtos
}
