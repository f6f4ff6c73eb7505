package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/enrollment"
)

type enrollmentRepository struct {
	db *DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil)

func NewEnrollmentRepository(db *DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func enrollmentField(e enrollment.Enrollment, name string) interface{} {
	switch name {
	case "student_id":
		return e.StudentID
	case "subject_id":
		return e.SubjectID
	}
	return e.ID
}

func (repo *enrollmentRepository) checkRefs(enr enrollment.Enrollment) error {
	if _, ok := repo.db.students[enr.StudentID]; !ok {
		return fkViolation("enrollments", "student_id")
	}
	if _, ok := repo.db.subjects[enr.SubjectID]; !ok {
		return fkViolation("enrollments", "subject_id")
	}
	return nil
}

func (repo *enrollmentRepository) QueryEnrollments(_ context.Context, ordering []core.DBOrdering) ([]enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	enrollments := rows(repo.db.enrollments)
	orderRows(enrollments, ordering, enrollmentField)
	return enrollments, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(_ context.Context, id int) (enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if e, ok := repo.db.enrollments[id]; ok {
		return *e, nil
	}
	return enrollment.Enrollment{}, enrollment.ErrNotFound
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, enr enrollment.Enrollment) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if err := repo.checkRefs(enr); err != nil {
		return 0, err
	}
	enr.ID = repo.db.nextID("enrollments")
	repo.db.enrollments[enr.ID] = &enr
	return enr.ID, nil
}

func (repo *enrollmentRepository) UpdateEnrollment(_ context.Context, enr enrollment.Enrollment) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.enrollments[enr.ID]; !ok {
		return false, nil
	}
	if err := repo.checkRefs(enr); err != nil {
		return false, err
	}
	repo.db.enrollments[enr.ID] = &enr
	return true, nil
}

func (repo *enrollmentRepository) DeleteEnrollment(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.enrollments[id]; !ok {
		return false, nil
	}
	delete(repo.db.enrollments, id)
	return true, nil
}
