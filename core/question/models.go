package question

import (
	"github.com/go-playground/validator/v10"

	"github.com/aulahub/academia/core"
)

var OrderingFields = []string{"id", "exam_id"}

type Question struct {
	ID     int    `db:"id"`
	Text   string `db:"text"`
	ExamID int    `db:"exam_id"`
}

type NewQuestion struct {
	Text   string `json:"text" validate:"required,max=1000"`
	ExamID int    `json:"exam_id" validate:"required,dbid"`
}

func (nq *NewQuestion) Validate(validate *validator.Validate) error {
	nq.Text = core.CleanString(nq.Text)
	return validate.Struct(nq)
}

type UpdateQuestion struct {
	ID     int    `json:"id" validate:"required,dbid"`
	Text   string `json:"text" validate:"required,max=1000"`
	ExamID int    `json:"exam_id" validate:"required,dbid"`
}

func (uq *UpdateQuestion) Validate(validate *validator.Validate) error {
	uq.Text = core.CleanString(uq.Text)
	return validate.Struct(uq)
}

type QuestionDTO struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	ExamID int    `json:"exam_id"`
}
