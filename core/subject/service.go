package subject

import (
	"context"

	"github.com/aulahub/academia/core"
)

var ErrNotFound error = core.NewNotFoundError("subject not found")

type Repository interface {
	QuerySubjects(ctx context.Context, ordering []core.DBOrdering) ([]Subject, error)
	GetSubjectByID(ctx context.Context, id int) (Subject, error)
	CreateSubject(ctx context.Context, subj Subject) (int, error)
	UpdateSubject(ctx context.Context, subj Subject) (bool, error)
	// DeleteSubject also removes the subject's enrollments and exams.
	DeleteSubject(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Subject, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QuerySubjects(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	subj := FromNew(ns)
	id, err := svc.repo.CreateSubject(ctx, subj)
	if err != nil {
		return Subject{}, err
	}
	subj.ID = id
	return subj, nil
}

func (svc *Service) Update(ctx context.Context, us UpdateSubject) error {
	ok, err := svc.repo.UpdateSubject(ctx, FromUpdate(us))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteSubject(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
