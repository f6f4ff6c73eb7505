package question

import (
	"context"

	"github.com/aulahub/academia/core"
)

var ErrNotFound error = core.NewNotFoundError("question not found")

type Repository interface {
	QueryQuestions(ctx context.Context, ordering []core.DBOrdering) ([]Question, error)
	GetQuestionByID(ctx context.Context, id int) (Question, error)
	CreateQuestion(ctx context.Context, q Question) (int, error)
	UpdateQuestion(ctx context.Context, q Question) (bool, error)
	DeleteQuestion(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Question, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QueryQuestions(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Question, error) {
	return svc.repo.GetQuestionByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nq NewQuestion) (Question, error) {
	q := FromNew(nq)
	id, err := svc.repo.CreateQuestion(ctx, q)
	if err != nil {
		return Question{}, err
	}
	q.ID = id
	return q, nil
}

func (svc *Service) Update(ctx context.Context, uq UpdateQuestion) error {
	ok, err := svc.repo.UpdateQuestion(ctx, FromUpdate(uq))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
