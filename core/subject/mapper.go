package subject

func FromNew(ns NewSubject) Subject {
	return Subject{Name: ns.Name, Credits: ns.Credits}
}

func FromUpdate(us UpdateSubject) Subject {
	return Subject{ID: us.ID, Name: us.Name, Credits: us.Credits}
}

func ToDTO(s Subject) SubjectDTO {
	return SubjectDTO{ID: s.ID, Name: s.Name, Credits: s.Credits}
}

func ToDTOs(subjects []Subject) []SubjectDTO {
	dtos := make([]SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		dtos = append(dtos, ToDTO(s))
	}
	return dtos
}
