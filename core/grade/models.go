package grade

import (
	"math"

	"github.com/go-playground/validator/v10"
)

const (
	MinScore = 0
	MaxScore = 10
)

var OrderingFields = []string{"id", "student_id", "exam_id", "score"}

// Grade is the score a student obtained on an exam. There is at most one Grade per (student, exam).
type Grade struct {
	ID        int     `db:"id"`
	StudentID int     `db:"student_id"`
	ExamID    int     `db:"exam_id"`
	Score     float64 `db:"score"`
}

type NewGrade struct {
	StudentID int     `json:"student_id" validate:"required,dbid"`
	ExamID    int     `json:"exam_id" validate:"required,dbid"`
	Score     float64 `json:"score" validate:"min=0,max=10"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	return validate.Struct(ng)
}

type UpdateGrade struct {
	ID        int     `json:"id" validate:"required,dbid"`
	StudentID int     `json:"student_id" validate:"required,dbid"`
	ExamID    int     `json:"exam_id" validate:"required,dbid"`
	Score     float64 `json:"score" validate:"min=0,max=10"`
}

func (ug *UpdateGrade) Validate(validate *validator.Validate) error {
	return validate.Struct(ug)
}

type GradeDTO struct {
	ID        int     `json:"id"`
	StudentID int     `json:"student_id"`
	ExamID    int     `json:"exam_id"`
	Score     float64 `json:"score"`
}

// RoundScore keeps two decimals, like the numeric(5,2) score column.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
