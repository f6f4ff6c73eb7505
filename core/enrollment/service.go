package enrollment

import (
	"context"

	"github.com/aulahub/academia/core"
)

var ErrNotFound error = core.NewNotFoundError("enrollment not found")

type Repository interface {
	QueryEnrollments(ctx context.Context, ordering []core.DBOrdering) ([]Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int) (Enrollment, error)
	CreateEnrollment(ctx context.Context, enr Enrollment) (int, error)
	UpdateEnrollment(ctx context.Context, enr Enrollment) (bool, error)
	DeleteEnrollment(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Enrollment, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QueryEnrollments(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Enrollment, error) {
	return svc.repo.GetEnrollmentByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	enr := FromNew(ne)
	id, err := svc.repo.CreateEnrollment(ctx, enr)
	if err != nil {
		return Enrollment{}, err
	}
	enr.ID = id
	return enr, nil
}

func (svc *Service) Update(ctx context.Context, ue UpdateEnrollment) error {
	ok, err := svc.repo.UpdateEnrollment(ctx, FromUpdate(ue))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteEnrollment(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
