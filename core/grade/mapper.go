package grade

func FromNew(ng NewGrade) Grade {
	return Grade{StudentID: ng.StudentID, ExamID: ng.ExamID, Score: RoundScore(ng.Score)}
}

func FromUpdate(ug UpdateGrade) Grade {
	return Grade{ID: ug.ID, StudentID: ug.StudentID, ExamID: ug.ExamID, Score: RoundScore(ug.Score)}
}

func ToDTO(g Grade) GradeDTO {
	return GradeDTO{ID: g.ID, StudentID: g.StudentID, ExamID: g.ExamID, Score: g.Score}
}

func ToDTOs(grades []Grade) []GradeDTO {
	dtos := make([]GradeDTO, 0, len(grades))
	for _, g := range grades {
		dtos = append(dtos, ToDTO(g))
	}
	return dtos
}
