package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/exam"
)

type examRepository struct {
	db *DB
}

var _ exam.Repository = (*examRepository)(nil)

func NewExamRepository(db *DB) *examRepository {
	return &examRepository{db: db}
}

func examField(e exam.Exam, name string) interface{} {
	switch name {
	case "title":
		return e.Title
	case "subject_id":
		return e.SubjectID
	case "scheduled_at":
		return e.ScheduledAt
	}
	return e.ID
}

func (repo *examRepository) QueryExams(_ context.Context, ordering []core.DBOrdering) ([]exam.Exam, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	exams := rows(repo.db.exams)
	orderRows(exams, ordering, examField)
	return exams, nil
}

func (repo *examRepository) GetExamByID(_ context.Context, id int) (exam.Exam, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if e, ok := repo.db.exams[id]; ok {
		return *e, nil
	}
	return exam.Exam{}, exam.ErrNotFound
}

func (repo *examRepository) CreateExam(_ context.Context, ex exam.Exam) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.subjects[ex.SubjectID]; !ok {
		return 0, fkViolation("exams", "subject_id")
	}
	ex.ID = repo.db.nextID("exams")
	repo.db.exams[ex.ID] = &ex
	return ex.ID, nil
}

func (repo *examRepository) UpdateExam(_ context.Context, ex exam.Exam) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.exams[ex.ID]; !ok {
		return false, nil
	}
	if _, ok := repo.db.subjects[ex.SubjectID]; !ok {
		return false, fkViolation("exams", "subject_id")
	}
	repo.db.exams[ex.ID] = &ex
	return true, nil
}

func (repo *examRepository) DeleteExam(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.exams[id]; !ok {
		return false, nil
	}
	repo.db.deleteExam(id)
	return true, nil
}
