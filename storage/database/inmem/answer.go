package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
)

type answerRepository struct {
	db *DB
}

var _ answer.Repository = (*answerRepository)(nil)

func NewAnswerRepository(db *DB) *answerRepository {
	return &answerRepository{db: db}
}

func answerField(a answer.Answer, name string) interface{} {
	switch name {
	case "question_id":
		return a.QuestionID
	case "is_correct":
		return a.IsCorrect
	}
	return a.ID
}

func (repo *answerRepository) QueryAnswers(_ context.Context, ordering []core.DBOrdering) ([]answer.Answer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	answers := rows(repo.db.answers)
	orderRows(answers, ordering, answerField)
	return answers, nil
}

func (repo *answerRepository) GetAnswerByID(_ context.Context, id int) (answer.Answer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if a, ok := repo.db.answers[id]; ok {
		return *a, nil
	}
	return answer.Answer{}, answer.ErrNotFound
}

func (repo *answerRepository) CreateAnswer(_ context.Context, a answer.Answer) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.questions[a.QuestionID]; !ok {
		return 0, fkViolation("answers", "question_id")
	}
	a.ID = repo.db.nextID("answers")
	repo.db.answers[a.ID] = &a
	return a.ID, nil
}

func (repo *answerRepository) UpdateAnswer(_ context.Context, a answer.Answer) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.answers[a.ID]; !ok {
		return false, nil
	}
	if _, ok := repo.db.questions[a.QuestionID]; !ok {
		return false, fkViolation("answers", "question_id")
	}
	repo.db.answers[a.ID] = &a
	return true, nil
}

func (repo *answerRepository) DeleteAnswer(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.answers[id]; !ok {
		return false, nil
	}
	delete(repo.db.answers, id)
	return true, nil
}
