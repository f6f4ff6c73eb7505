package grade

import (
	"context"

	"github.com/aulahub/academia/core"
)

var (
	ErrNotFound  error = core.NewNotFoundError("grade not found")
	ErrDuplicate error = core.NewConflictError("the student already has a grade recorded for this exam")
)

type Repository interface {
	QueryGrades(ctx context.Context, ordering []core.DBOrdering) ([]Grade, error)
	GetGradeByID(ctx context.Context, id int) (Grade, error)
	// CreateGrade returns ErrDuplicate when the (student, exam) pair is already graded.
	CreateGrade(ctx context.Context, g Grade) (int, error)
	UpdateGrade(ctx context.Context, g Grade) (bool, error)
	DeleteGrade(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Grade, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QueryGrades(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Grade, error) {
	return svc.repo.GetGradeByID(ctx, id)
}

// Create relies on the storage's unique (student, exam) constraint; no lookup happens beforehand.
func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	g := FromNew(ng)
	id, err := svc.repo.CreateGrade(ctx, g)
	if err != nil {
		return Grade{}, err
	}
	g.ID = id
	return g, nil
}

func (svc *Service) Update(ctx context.Context, ug UpdateGrade) error {
	ok, err := svc.repo.UpdateGrade(ctx, FromUpdate(ug))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteGrade(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
