package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/question"
)

type questionRepository struct {
	db *DB
}

var _ question.Repository = (*questionRepository)(nil)

func NewQuestionRepository(db *DB) *questionRepository {
	return &questionRepository{db: db}
}

func questionField(q question.Question, name string) interface{} {
	if name == "exam_id" {
		return q.ExamID
	}
	return q.ID
}

func (repo *questionRepository) QueryQuestions(_ context.Context, ordering []core.DBOrdering) ([]question.Question, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	questions := rows(repo.db.questions)
	orderRows(questions, ordering, questionField)
	return questions, nil
}

func (repo *questionRepository) GetQuestionByID(_ context.Context, id int) (question.Question, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if q, ok := repo.db.questions[id]; ok {
		return *q, nil
	}
	return question.Question{}, question.ErrNotFound
}

func (repo *questionRepository) CreateQuestion(_ context.Context, q question.Question) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.exams[q.ExamID]; !ok {
		return 0, fkViolation("questions", "exam_id")
	}
	q.ID = repo.db.nextID("questions")
	repo.db.questions[q.ID] = &q
	return q.ID, nil
}

func (repo *questionRepository) UpdateQuestion(_ context.Context, q question.Question) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.questions[q.ID]; !ok {
		return false, nil
	}
	if _, ok := repo.db.exams[q.ExamID]; !ok {
		return false, fkViolation("questions", "exam_id")
	}
	repo.db.questions[q.ID] = &q
	return true, nil
}

func (repo *questionRepository) DeleteQuestion(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.questions[id]; !ok {
		return false, nil
	}
	repo.db.deleteQuestion(id)
	return true, nil
}
