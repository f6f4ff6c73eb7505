package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
)

type answerRepository struct {
	db *sqlx.DB
}

var _ answer.Repository = (*answerRepository)(nil)

func NewAnswerRepository(db *sqlx.DB) *answerRepository {
	return &answerRepository{db: db}
}

func (repo *answerRepository) QueryAnswers(ctx context.Context, ordering []core.DBOrdering) ([]answer.Answer, error) {
	answers := make([]answer.Answer, 0)
	q := "SELECT id, text, is_correct, question_id FROM answers" + orderBy(ordering)
	if err := repo.db.SelectContext(ctx, &answers, q); err != nil {
		return nil, trapErr(err, "querying answers", answer.ErrNotFound, nil)
	}
	return answers, nil
}

func (repo *answerRepository) GetAnswerByID(ctx context.Context, id int) (answer.Answer, error) {
	var a answer.Answer
	q := "SELECT id, text, is_correct, question_id FROM answers WHERE id = $1"
	if err := repo.db.GetContext(ctx, &a, q, id); err != nil {
		return answer.Answer{}, trapErr(err, "getting answer by id", answer.ErrNotFound, nil)
	}
	return a, nil
}

func (repo *answerRepository) CreateAnswer(ctx context.Context, a answer.Answer) (int, error) {
	var id int
	q := `INSERT INTO answers (text, is_correct, question_id) VALUES ($1, $2, $3) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, q, a.Text, a.IsCorrect, a.QuestionID).Scan(&id); err != nil {
		return 0, trapErr(err, "creating answer", answer.ErrNotFound, nil)
	}
	return id, nil
}

func (repo *answerRepository) UpdateAnswer(ctx context.Context, a answer.Answer) (bool, error) {
	q := `UPDATE answers SET text = $1, is_correct = $2, question_id = $3 WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, q, a.Text, a.IsCorrect, a.QuestionID, a.ID)
	if err != nil {
		return false, trapErr(err, "updating answer", answer.ErrNotFound, nil)
	}
	return affected(res, "updating answer")
}

func (repo *answerRepository) DeleteAnswer(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting answer", answer.ErrNotFound, nil)
	}
	return affected(res, "deleting answer")
}
