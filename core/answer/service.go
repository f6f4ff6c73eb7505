package answer

import (
	"context"

	"github.com/aulahub/academia/core"
)

var ErrNotFound error = core.NewNotFoundError("answer not found")

type Repository interface {
	QueryAnswers(ctx context.Context, ordering []core.DBOrdering) ([]Answer, error)
	GetAnswerByID(ctx context.Context, id int) (Answer, error)
	CreateAnswer(ctx context.Context, a Answer) (int, error)
	UpdateAnswer(ctx context.Context, a Answer) (bool, error)
	DeleteAnswer(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Answer, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QueryAnswers(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Answer, error) {
	return svc.repo.GetAnswerByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, na NewAnswer) (Answer, error) {
	a := FromNew(na)
	id, err := svc.repo.CreateAnswer(ctx, a)
	if err != nil {
		return Answer{}, err
	}
	a.ID = id
	return a, nil
}

func (svc *Service) Update(ctx context.Context, ua UpdateAnswer) error {
	ok, err := svc.repo.UpdateAnswer(ctx, FromUpdate(ua))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteAnswer(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
