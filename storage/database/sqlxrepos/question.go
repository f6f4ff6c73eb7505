package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/question"
)

type questionRepository struct {
	db *sqlx.DB
}

var _ question.Repository = (*questionRepository)(nil)

func NewQuestionRepository(db *sqlx.DB) *questionRepository {
	return &questionRepository{db: db}
}

func (repo *questionRepository) QueryQuestions(ctx context.Context, ordering []core.DBOrdering) ([]question.Question, error) {
	questions := make([]question.Question, 0)
	if err := repo.db.SelectContext(ctx, &questions, "SELECT id, text, exam_id FROM questions"+orderBy(ordering)); err != nil {
		return nil, trapErr(err, "querying questions", question.ErrNotFound, nil)
	}
	return questions, nil
}

func (repo *questionRepository) GetQuestionByID(ctx context.Context, id int) (question.Question, error) {
	var q question.Question
	if err := repo.db.GetContext(ctx, &q, "SELECT id, text, exam_id FROM questions WHERE id = $1", id); err != nil {
		return question.Question{}, trapErr(err, "getting question by id", question.ErrNotFound, nil)
	}
	return q, nil
}

func (repo *questionRepository) CreateQuestion(ctx context.Context, q question.Question) (int, error) {
	var id int
	stmt := `INSERT INTO questions (text, exam_id) VALUES ($1, $2) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, stmt, q.Text, q.ExamID).Scan(&id); err != nil {
		return 0, trapErr(err, "creating question", question.ErrNotFound, nil)
	}
	return id, nil
}

func (repo *questionRepository) UpdateQuestion(ctx context.Context, q question.Question) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE questions SET text = $1, exam_id = $2 WHERE id = $3`, q.Text, q.ExamID, q.ID)
	if err != nil {
		return false, trapErr(err, "updating question", question.ErrNotFound, nil)
	}
	return affected(res, "updating question")
}

func (repo *questionRepository) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting question", question.ErrNotFound, nil)
	}
	return affected(res, "deleting question")
}
