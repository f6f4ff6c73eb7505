package report

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/aulahub/academia/core"
)

// Audit operations recorded for grades.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

type StudentAverage struct {
	StudentID int     `db:"student_id" json:"student_id"`
	Name      string  `db:"name" json:"name"`
	Average   float64 `db:"average" json:"average"`
}

// SubjectGrade is one line of the grades report, ordered by subject then student.
type SubjectGrade struct {
	Subject string  `db:"subject" json:"subject"`
	Student string  `db:"student" json:"student"`
	Exam    string  `db:"exam" json:"exam"`
	Score   float64 `db:"score" json:"score"`
}

// ExamRecord is one exam in a student's history, most recent first.
type ExamRecord struct {
	Student     string    `db:"student" json:"student"`
	Subject     string    `db:"subject" json:"subject"`
	Exam        string    `db:"exam" json:"exam"`
	ScheduledAt core.Date `db:"scheduled_at" json:"scheduled_at"`
	Score       float64   `db:"score" json:"score"`
}

// ExamStats aggregates the grades of one exam. Aggregates are null when there are not enough grades.
type ExamStats struct {
	Total   int          `db:"total" json:"total"`
	Average null.Float64 `db:"average" json:"average"`
	Min     null.Float64 `db:"min" json:"min"`
	Max     null.Float64 `db:"max" json:"max"`
	StdDev  null.Float64 `db:"stddev" json:"stddev"`
}

// GradeAudit is an append-only trace of a write on the grades table.
type GradeAudit struct {
	ID         int       `db:"id" json:"id"`
	GradeID    int       `db:"grade_id" json:"grade_id"`
	StudentID  int       `db:"student_id" json:"student_id"`
	ExamID     int       `db:"exam_id" json:"exam_id"`
	Score      float64   `db:"score" json:"score"`
	Operation  string    `db:"operation" json:"operation"`
	OperatedAt time.Time `db:"operated_at" json:"operated_at"`
}
