package report

import (
	"context"

	"github.com/aulahub/academia/core"
)

const DefaultTop = 5

var ErrNoGrades error = core.NewNotFoundError("no grades recorded for this student")

type Repository interface {
	// StudentAverage returns ErrNoGrades when the student has no grade.
	StudentAverage(ctx context.Context, studentID int) (StudentAverage, error)
	GradesBySubject(ctx context.Context) ([]SubjectGrade, error)
	StudentExamHistory(ctx context.Context, studentID int) ([]ExamRecord, error)
	TopStudents(ctx context.Context, n int) ([]StudentAverage, error)
	ExamStatistics(ctx context.Context, examID int) (ExamStats, error)
	// GradeAudits lists audit entries, oldest first. gradeID 0 lists all of them.
	GradeAudits(ctx context.Context, gradeID int) ([]GradeAudit, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) StudentAverage(ctx context.Context, studentID int) (StudentAverage, error) {
	return svc.repo.StudentAverage(ctx, studentID)
}

func (svc *Service) GradesBySubject(ctx context.Context) ([]SubjectGrade, error) {
	return svc.repo.GradesBySubject(ctx)
}

func (svc *Service) StudentExamHistory(ctx context.Context, studentID int) ([]ExamRecord, error) {
	return svc.repo.StudentExamHistory(ctx, studentID)
}

func (svc *Service) TopStudents(ctx context.Context, n int) ([]StudentAverage, error) {
	if n <= 0 {
		n = DefaultTop
	}
	return svc.repo.TopStudents(ctx, n)
}

func (svc *Service) ExamStatistics(ctx context.Context, examID int) (ExamStats, error) {
	return svc.repo.ExamStatistics(ctx, examID)
}

func (svc *Service) GradeAudits(ctx context.Context, gradeID int) ([]GradeAudit, error) {
	return svc.repo.GradeAudits(ctx, gradeID)
}
