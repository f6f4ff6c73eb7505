package enrollment

import "github.com/go-playground/validator/v10"

var OrderingFields = []string{"id", "student_id", "subject_id"}

// Enrollment assigns a student to a subject.
type Enrollment struct {
	ID        int `db:"id"`
	StudentID int `db:"student_id"`
	SubjectID int `db:"subject_id"`
}

type NewEnrollment struct {
	StudentID int `json:"student_id" validate:"required,dbid"`
	SubjectID int `json:"subject_id" validate:"required,dbid"`
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	return validate.Struct(ne)
}

type UpdateEnrollment struct {
	ID        int `json:"id" validate:"required,dbid"`
	StudentID int `json:"student_id" validate:"required,dbid"`
	SubjectID int `json:"subject_id" validate:"required,dbid"`
}

func (ue *UpdateEnrollment) Validate(validate *validator.Validate) error {
	return validate.Struct(ue)
}

type EnrollmentDTO struct {
	ID        int `json:"id"`
	StudentID int `json:"student_id"`
	SubjectID int `json:"subject_id"`
}
