package enrollment

func FromNew(ne NewEnrollment) Enrollment {
	return Enrollment{StudentID: ne.StudentID, SubjectID: ne.SubjectID}
}

func FromUpdate(ue UpdateEnrollment) Enrollment {
	return Enrollment{ID: ue.ID, StudentID: ue.StudentID, SubjectID: ue.SubjectID}
}

func ToDTO(e Enrollment) EnrollmentDTO {
	return EnrollmentDTO{ID: e.ID, StudentID: e.StudentID, SubjectID: e.SubjectID}
}

func ToDTOs(enrollments []Enrollment) []EnrollmentDTO {
	dtos := make([]EnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		dtos = append(dtos, ToDTO(e))
	}
	return dtos
}
