package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/student"
)

var studentUniques = constraintErrors{"students_email_key": student.ErrEmailExists}

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *sqlx.DB) *studentRepository {
	return &studentRepository{db: db}
}

const studentColumns = "id, name, age, email, password_hash, credits"

func (repo *studentRepository) QueryStudents(ctx context.Context, ordering []core.DBOrdering) ([]student.Student, error) {
	students := make([]student.Student, 0)
	q := "SELECT " + studentColumns + " FROM students" + orderBy(ordering)
	if err := repo.db.SelectContext(ctx, &students, q); err != nil {
		return nil, trapErr(err, "querying students", student.ErrNotFound, nil)
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var stdt student.Student
	q := "SELECT " + studentColumns + " FROM students WHERE id = $1"
	if err := repo.db.GetContext(ctx, &stdt, q, id); err != nil {
		return student.Student{}, trapErr(err, "getting student by id", student.ErrNotFound, nil)
	}
	return stdt, nil
}

func (repo *studentRepository) GetStudentByEmail(ctx context.Context, email string) (student.Student, error) {
	var stdt student.Student
	q := "SELECT " + studentColumns + " FROM students WHERE email = $1"
	if err := repo.db.GetContext(ctx, &stdt, q, email); err != nil {
		return student.Student{}, trapErr(err, "getting student by email", student.ErrNotFound, nil)
	}
	return stdt, nil
}

func (repo *studentRepository) CreateStudent(ctx context.Context, stdt student.Student) (int, error) {
	var id int
	q := `INSERT INTO students (name, age, email, password_hash, credits) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := repo.db.QueryRowxContext(ctx, q, stdt.Name, stdt.Age, stdt.Email, stdt.PasswordHash, stdt.Credits).Scan(&id)
	if err != nil {
		return 0, trapErr(err, "creating student", student.ErrNotFound, studentUniques)
	}
	return id, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, stdt student.Student) (bool, error) {
	q := `UPDATE students SET name = $1, age = $2, email = $3, credits = $4 WHERE id = $5`
	args := []interface{}{stdt.Name, stdt.Age, stdt.Email, stdt.Credits, stdt.ID}
	if stdt.PasswordHash != nil {
		q = `UPDATE students SET name = $1, age = $2, email = $3, credits = $4, password_hash = $6 WHERE id = $5`
		args = append(args, stdt.PasswordHash)
	}
	res, err := repo.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, trapErr(err, "updating student", student.ErrNotFound, studentUniques)
	}
	return affected(res, "updating student")
}

func (repo *studentRepository) UpdateStudentPassword(ctx context.Context, id int, hash []byte) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE students SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return false, trapErr(err, "updating student password", student.ErrNotFound, nil)
	}
	return affected(res, "updating student password")
}

// DeleteStudent fails with a *core.IntegrityError while the student has grades.
func (repo *studentRepository) DeleteStudent(ctx context.Context, id int) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, trapErr(err, "deleting student", student.ErrNotFound, nil)
	}
	return affected(res, "deleting student")
}
