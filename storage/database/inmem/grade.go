package inmemdb

import (
	"context"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/report"
)

type gradeRepository struct {
	db *DB
}

var _ grade.Repository = (*gradeRepository)(nil)

func NewGradeRepository(db *DB) *gradeRepository {
	return &gradeRepository{db: db}
}

func gradeField(g grade.Grade, name string) interface{} {
	switch name {
	case "student_id":
		return g.StudentID
	case "exam_id":
		return g.ExamID
	case "score":
		return g.Score
	}
	return g.ID
}

// check applies the grades table constraints, excluding the row being updated from the uniqueness check.
func (repo *gradeRepository) check(g grade.Grade) error {
	if g.Score < grade.MinScore || g.Score > grade.MaxScore {
		return checkViolation("grades", "score")
	}
	for _, other := range repo.db.grades {
		if other.ID != g.ID && other.StudentID == g.StudentID && other.ExamID == g.ExamID {
			return grade.ErrDuplicate
		}
	}
	if _, ok := repo.db.students[g.StudentID]; !ok {
		return fkViolation("grades", "student_id")
	}
	if _, ok := repo.db.exams[g.ExamID]; !ok {
		return fkViolation("grades", "exam_id")
	}
	return nil
}

func (repo *gradeRepository) QueryGrades(_ context.Context, ordering []core.DBOrdering) ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	grades := rows(repo.db.grades)
	orderRows(grades, ordering, gradeField)
	return grades, nil
}

func (repo *gradeRepository) GetGradeByID(_ context.Context, id int) (grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if g, ok := repo.db.grades[id]; ok {
		return *g, nil
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) CreateGrade(_ context.Context, g grade.Grade) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	g.ID = 0
	if err := repo.check(g); err != nil {
		return 0, err
	}
	g.ID = repo.db.nextID("grades")
	repo.db.grades[g.ID] = &g
	repo.db.audit(g, report.OpInsert)
	return g.ID, nil
}

func (repo *gradeRepository) UpdateGrade(_ context.Context, g grade.Grade) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.grades[g.ID]; !ok {
		return false, nil
	}
	if err := repo.check(g); err != nil {
		return false, err
	}
	repo.db.grades[g.ID] = &g
	repo.db.audit(g, report.OpUpdate)
	return true, nil
}

func (repo *gradeRepository) DeleteGrade(_ context.Context, id int) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.grades[id]; !ok {
		return false, nil
	}
	repo.db.deleteGrade(id)
	return true, nil
}
