package exam

import (
	"context"
	"time"

	"github.com/aulahub/academia/core"
)

var (
	NowFunc = time.Now // mockable

	ErrNotFound error = core.NewNotFoundError("exam not found")
)

type Repository interface {
	QueryExams(ctx context.Context, ordering []core.DBOrdering) ([]Exam, error)
	GetExamByID(ctx context.Context, id int) (Exam, error)
	CreateExam(ctx context.Context, ex Exam) (int, error)
	UpdateExam(ctx context.Context, ex Exam) (bool, error)
	// DeleteExam also removes the exam's questions (with their answers) and grades.
	DeleteExam(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Exam, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QueryExams(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Exam, error) {
	return svc.repo.GetExamByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ne NewExam) (Exam, error) {
	ex := FromNew(ne)
	if ex.ScheduledAt.IsZero() {
		y, m, d := NowFunc().UTC().Date()
		ex.ScheduledAt = core.NewDate(y, m, d)
	}
	id, err := svc.repo.CreateExam(ctx, ex)
	if err != nil {
		return Exam{}, err
	}
	ex.ID = id
	return ex, nil
}

func (svc *Service) Update(ctx context.Context, ue UpdateExam) error {
	ok, err := svc.repo.UpdateExam(ctx, FromUpdate(ue))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteExam(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
