package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/exam"
)

type examRepository struct {
	db *sqlx.DB
}

var _ exam.Repository = (*examRepository)(nil)

func NewExamRepository(db *sqlx.DB) *examRepository {
	return &examRepository{db: db}
}

func (repo *examRepository) QueryExams(ctx context.Context, ordering []core.DBOrdering) ([]exam.Exam, error) {
	exams := make([]exam.Exam, 0)
	q := "SELECT id, title, subject_id, scheduled_at FROM exams" + orderBy(ordering)
	if err := repo.db.SelectContext(ctx, &exams, q); err != nil {
		return nil, trapErr(err, "querying exams", exam.ErrNotFound, nil)
	}
	return exams, nil
}

func (repo *examRepository) GetExamByID(ctx context.Context, id int) (exam.Exam, error) {
	var ex exam.Exam
	q := "SELECT id, title, subject_id, scheduled_at FROM exams WHERE id = $1"
	if err := repo.db.GetContext(ctx, &ex, q, id); err != nil {
		return exam.Exam{}, trapErr(err, "getting exam by id", exam.ErrNotFound, nil)
	}
	return ex, nil
}

func (repo *examRepository) CreateExam(ctx context.Context, ex exam.Exam) (int, error) {
	var id int
	q := `INSERT INTO exams (title, subject_id, scheduled_at) VALUES ($1, $2, $3) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, q, ex.Title, ex.SubjectID, ex.ScheduledAt).Scan(&id); err != nil {
		return 0, trapErr(err, "creating exam", exam.ErrNotFound, nil)
	}
	return id, nil
}

func (repo *examRepository) UpdateExam(ctx context.Context, ex exam.Exam) (bool, error) {
	q := `UPDATE exams SET title = $1, subject_id = $2, scheduled_at = $3 WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, q, ex.Title, ex.SubjectID, ex.ScheduledAt, ex.ID)
	if err != nil {
		return false, trapErr(err, "updating exam", exam.ErrNotFound, nil)
	}
	return affected(res, "updating exam")
}

func (repo *examRepository) DeleteExam(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting exam", exam.ErrNotFound, nil)
	}
	return affected(res, "deleting exam")
}
