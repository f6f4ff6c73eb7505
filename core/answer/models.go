package answer

import (
	"github.com/go-playground/validator/v10"

	"github.com/aulahub/academia/core"
)

var OrderingFields = []string{"id", "question_id", "is_correct"}

// Answer is one of the choices offered for a Question.
type Answer struct {
	ID         int    `db:"id"`
	Text       string `db:"text"`
	IsCorrect  bool   `db:"is_correct"`
	QuestionID int    `db:"question_id"`
}

type NewAnswer struct {
	Text       string `json:"text" validate:"required,max=1000"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID int    `json:"question_id" validate:"required,dbid"`
}

func (na *NewAnswer) Validate(validate *validator.Validate) error {
	na.Text = core.CleanString(na.Text)
	return validate.Struct(na)
}

type UpdateAnswer struct {
	ID         int    `json:"id" validate:"required,dbid"`
	Text       string `json:"text" validate:"required,max=1000"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID int    `json:"question_id" validate:"required,dbid"`
}

func (ua *UpdateAnswer) Validate(validate *validator.Validate) error {
	ua.Text = core.CleanString(ua.Text)
	return validate.Struct(ua)
}

type AnswerDTO struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID int    `json:"question_id"`
}
