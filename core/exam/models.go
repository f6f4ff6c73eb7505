package exam

import (
	"github.com/go-playground/validator/v10"

	"github.com/aulahub/academia/core"
)

var OrderingFields = []string{"id", "title", "subject_id", "scheduled_at"}

type Exam struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	SubjectID   int       `db:"subject_id"`
	ScheduledAt core.Date `db:"scheduled_at"`
}

// NewExam contains information needed to create a new Exam.
// ScheduledAt defaults to the current day when omitted.
type NewExam struct {
	Title       string    `json:"title" validate:"required,max=200"`
	SubjectID   int       `json:"subject_id" validate:"required,dbid"`
	ScheduledAt core.Date `json:"scheduled_at"`
}

func (ne *NewExam) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	return validate.Struct(ne)
}

type UpdateExam struct {
	ID          int       `json:"id" validate:"required,dbid"`
	Title       string    `json:"title" validate:"required,max=200"`
	SubjectID   int       `json:"subject_id" validate:"required,dbid"`
	ScheduledAt core.Date `json:"scheduled_at" validate:"required"`
}

func (ue *UpdateExam) Validate(validate *validator.Validate) error {
	ue.Title = core.CleanString(ue.Title)
	return validate.Struct(ue)
}

type ExamDTO struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	SubjectID   int       `json:"subject_id"`
	ScheduledAt core.Date `json:"scheduled_at"`
}
