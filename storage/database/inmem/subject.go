package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/subject"
)

type subjectRepository struct {
	db *DB
}

var _ subject.Repository = (*subjectRepository)(nil)

func NewSubjectRepository(db *DB) *subjectRepository {
	return &subjectRepository{db: db}
}

func subjectField(s subject.Subject, name string) interface{} {
	switch name {
	case "name":
		return s.Name
	case "credits":
		return s.Credits
	}
	return s.ID
}

func (repo *subjectRepository) QuerySubjects(_ context.Context, ordering []core.DBOrdering) ([]subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	subjects := rows(repo.db.subjects)
	orderRows(subjects, ordering, subjectField)
	return subjects, nil
}

func (repo *subjectRepository) GetSubjectByID(_ context.Context, id int) (subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.subjects[id]; ok {
		return *s, nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

func (repo *subjectRepository) CreateSubject(_ context.Context, subj subject.Subject) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	subj.ID = repo.db.nextID("subjects")
	repo.db.subjects[subj.ID] = &subj
	return subj.ID, nil
}

func (repo *subjectRepository) UpdateSubject(_ context.Context, subj subject.Subject) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.subjects[subj.ID]; !ok {
		return false, nil
	}
	repo.db.subjects[subj.ID] = &subj
	return true, nil
}

func (repo *subjectRepository) DeleteSubject(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.subjects[id]; !ok {
		return false, nil
	}
	repo.db.deleteSubject(id)
	return true, nil
}
