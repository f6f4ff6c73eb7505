package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/subject"
)

type subjectRepository struct {
	db *sqlx.DB
}

var _ subject.Repository = (*subjectRepository)(nil)

func NewSubjectRepository(db *sqlx.DB) *subjectRepository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) QuerySubjects(ctx context.Context, ordering []core.DBOrdering) ([]subject.Subject, error) {
	subjects := make([]subject.Subject, 0)
	if err := repo.db.SelectContext(ctx, &subjects, "SELECT id, name, credits FROM subjects"+orderBy(ordering)); err != nil {
		return nil, trapErr(err, "querying subjects", subject.ErrNotFound, nil)
	}
	return subjects, nil
}

func (repo *subjectRepository) GetSubjectByID(ctx context.Context, id int) (subject.Subject, error) {
	var subj subject.Subject
	if err := repo.db.GetContext(ctx, &subj, "SELECT id, name, credits FROM subjects WHERE id = $1", id); err != nil {
		return subject.Subject{}, trapErr(err, "getting subject by id", subject.ErrNotFound, nil)
	}
	return subj, nil
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, subj subject.Subject) (int, error) {
	var id int
	q := `INSERT INTO subjects (name, credits) VALUES ($1, $2) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, q, subj.Name, subj.Credits).Scan(&id); err != nil {
		return 0, trapErr(err, "creating subject", subject.ErrNotFound, nil)
	}
	return id, nil
}

func (repo *subjectRepository) UpdateSubject(ctx context.Context, subj subject.Subject) (bool, error) {
	q := `UPDATE subjects SET name = $1, credits = $2 WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, q, subj.Name, subj.Credits, subj.ID)
	if err != nil {
		return false, trapErr(err, "updating subject", subject.ErrNotFound, nil)
	}
	return affected(res, "updating subject")
}

func (repo *subjectRepository) DeleteSubject(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting subject", subject.ErrNotFound, nil)
	}
	return affected(res, "deleting subject")
}
