package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db}
}

func studentField(s student.Student, name string) interface{} {
	switch name {
	case "name":
		return s.Name
	case "age":
		return s.Age
	case "email":
		return s.Email
	case "credits":
		return s.Credits
	}
	return s.ID
}

func (repo *studentRepository) emailTaken(email string, exclID int) bool {
	for _, s := range repo.db.students {
		if s.Email == email && s.ID != exclID {
			return true
		}
	}
	return false
}

func (repo *studentRepository) QueryStudents(_ context.Context, ordering []core.DBOrdering) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := rows(repo.db.students)
	orderRows(students, ordering, studentField)
	return students, nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id int) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.students[id]; ok {
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetStudentByEmail(_ context.Context, email string) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, s := range repo.db.students {
		if s.Email == email {
			return *s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) CreateStudent(_ context.Context, stdt student.Student) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.emailTaken(stdt.Email, 0) {
		return 0, student.ErrEmailExists
	}
	stdt.ID = repo.db.nextID("students")
	repo.db.students[stdt.ID] = &stdt
	return stdt.ID, nil
}

func (repo *studentRepository) UpdateStudent(_ context.Context, stdt student.Student) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.students[stdt.ID]
	if !ok {
		return false, nil
	}
	if repo.emailTaken(stdt.Email, stdt.ID) {
		return false, student.ErrEmailExists
	}
	if stdt.PasswordHash == nil {
		stdt.PasswordHash = orig.PasswordHash
	}
	repo.db.students[stdt.ID] = &stdt
	return true, nil
}

func (repo *studentRepository) UpdateStudentPassword(_ context.Context, id int, hash []byte) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	s, ok := repo.db.students[id]
	if !ok {
		return false, nil
	}
	s.PasswordHash = hash
	return true, nil
}

func (repo *studentRepository) DeleteStudent(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.students[id]; !ok {
		return false, nil
	}
	if repo.db.studentHasGrades(id) {
		return false, core.NewIntegrityError(errStudentHasGrades)
	}
	for eid, enr := range repo.db.enrollments {
		if enr.StudentID == id {
			delete(repo.db.enrollments, eid)
		}
	}
	delete(repo.db.students, id)
	return true, nil
}
