package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/enrollment"
)

type enrollmentRepository struct {
	db *sqlx.DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil)

func NewEnrollmentRepository(db *sqlx.DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) QueryEnrollments(ctx context.Context, ordering []core.DBOrdering) ([]enrollment.Enrollment, error) {
	enrollments := make([]enrollment.Enrollment, 0)
	q := "SELECT id, student_id, subject_id FROM enrollments" + orderBy(ordering)
	if err := repo.db.SelectContext(ctx, &enrollments, q); err != nil {
		return nil, trapErr(err, "querying enrollments", enrollment.ErrNotFound, nil)
	}
	return enrollments, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(ctx context.Context, id int) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	q := "SELECT id, student_id, subject_id FROM enrollments WHERE id = $1"
	if err := repo.db.GetContext(ctx, &enr, q, id); err != nil {
		return enrollment.Enrollment{}, trapErr(err, "getting enrollment by id", enrollment.ErrNotFound, nil)
	}
	return enr, nil
}

func (repo *enrollmentRepository) CreateEnrollment(ctx context.Context, enr enrollment.Enrollment) (int, error) {
	var id int
	q := `INSERT INTO enrollments (student_id, subject_id) VALUES ($1, $2) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, q, enr.StudentID, enr.SubjectID).Scan(&id); err != nil {
		return 0, trapErr(err, "creating enrollment", enrollment.ErrNotFound, nil)
	}
	return id, nil
}

func (repo *enrollmentRepository) UpdateEnrollment(ctx context.Context, enr enrollment.Enrollment) (bool, error) {
	q := `UPDATE enrollments SET student_id = $1, subject_id = $2 WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, q, enr.StudentID, enr.SubjectID, enr.ID)
	if err != nil {
		return false, trapErr(err, "updating enrollment", enrollment.ErrNotFound, nil)
	}
	return affected(res, "updating enrollment")
}

func (repo *enrollmentRepository) DeleteEnrollment(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting enrollment", enrollment.ErrNotFound, nil)
	}
	return affected(res, "deleting enrollment")
}
