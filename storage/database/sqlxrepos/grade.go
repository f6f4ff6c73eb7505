package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/grade"
)

var gradeUniques = constraintErrors{"grades_student_exam_key": grade.ErrDuplicate}

type gradeRepository struct {
	db *sqlx.DB
}

var _ grade.Repository = (*gradeRepository)(nil)

func NewGradeRepository(db *sqlx.DB) *gradeRepository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) QueryGrades(ctx context.Context, ordering []core.DBOrdering) ([]grade.Grade, error) {
	grades := make([]grade.Grade, 0)
	q := "SELECT id, student_id, exam_id, score FROM grades" + orderBy(ordering)
	if err := repo.db.SelectContext(ctx, &grades, q); err != nil {
		return nil, trapErr(err, "querying grades", grade.ErrNotFound, nil)
	}
	return grades, nil
}

func (repo *gradeRepository) GetGradeByID(ctx context.Context, id int) (grade.Grade, error) {
	var g grade.Grade
	q := "SELECT id, student_id, exam_id, score FROM grades WHERE id = $1"
	if err := repo.db.GetContext(ctx, &g, q, id); err != nil {
		return grade.Grade{}, trapErr(err, "getting grade by id", grade.ErrNotFound, nil)
	}
	return g, nil
}

// CreateGrade is a single INSERT: the grades_student_exam_key constraint decides duplicates
// and the grades_audit trigger records the insertion in the same statement.
func (repo *gradeRepository) CreateGrade(ctx context.Context, g grade.Grade) (int, error) {
	var id int
	q := `INSERT INTO grades (student_id, exam_id, score) VALUES ($1, $2, $3) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, q, g.StudentID, g.ExamID, g.Score).Scan(&id); err != nil {
		return 0, trapErr(err, "creating grade", grade.ErrNotFound, gradeUniques)
	}
	return id, nil
}

func (repo *gradeRepository) UpdateGrade(ctx context.Context, g grade.Grade) (bool, error) {
	q := `UPDATE grades SET student_id = $1, exam_id = $2, score = $3 WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, q, g.StudentID, g.ExamID, g.Score, g.ID)
	if err != nil {
		return false, trapErr(err, "updating grade", grade.ErrNotFound, gradeUniques)
	}
	return affected(res, "updating grade")
}

func (repo *gradeRepository) DeleteGrade(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting grade", grade.ErrNotFound, nil)
	}
	return affected(res, "deleting grade")
}
