package student

import (
	"context"

	"github.com/pkg/errors"

	"github.com/aulahub/academia/core"
)

var (
	ErrNotFound           error = core.NewNotFoundError("student not found")
	ErrInvalidCredentials       = errors.New("invalid credentials")

	errEmailExists = errors.New("a student with this email already exists")
	ErrEmailExists = core.NewValidationError(errEmailExists, core.FieldError{Field: "email", Error: errEmailExists.Error()})
)

type Repository interface {
	QueryStudents(ctx context.Context, ordering []core.DBOrdering) ([]Student, error)
	GetStudentByID(ctx context.Context, id int) (Student, error)
	GetStudentByEmail(ctx context.Context, email string) (Student, error)
	CreateStudent(ctx context.Context, stdt Student) (int, error)
	// UpdateStudent overwrites every column; the password hash only when stdt.PasswordHash is set.
	UpdateStudent(ctx context.Context, stdt Student) (bool, error)
	UpdateStudentPassword(ctx context.Context, id int, hash []byte) (bool, error)
	DeleteStudent(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Student, error) {
	if err := core.CheckOrdering(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	return svc.repo.QueryStudents(ctx, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Student, error) {
	return svc.repo.GetStudentByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	stdt := FromNew(ns)
	if err := stdt.SetPassword(ns.Password); err != nil {
		return Student{}, err
	}
	id, err := svc.repo.CreateStudent(ctx, stdt)
	if err != nil {
		return Student{}, err
	}
	stdt.ID = id
	return stdt, nil
}

func (svc *Service) Update(ctx context.Context, us UpdateStudent) error {
	stdt := FromUpdate(us)
	if us.HasPassword() {
		if err := stdt.SetPassword(us.Password.String); err != nil {
			return err
		}
	}
	ok, err := svc.repo.UpdateStudent(ctx, stdt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	ok, err := svc.repo.DeleteStudent(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Authenticate returns the Student owning email if pwd matches its password.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Student, error) {
	stdt, err := svc.GetByEmail(ctx, email)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Student{}, ErrInvalidCredentials
		}
		return Student{}, err
	}
	if err = stdt.CheckPassword(pwd); err != nil {
		return Student{}, ErrInvalidCredentials
	}
	return stdt, nil
}

func (svc *Service) ResetPassword(ctx context.Context, email, pwd string) error {
	stdt, err := svc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err = stdt.SetPassword(pwd); err != nil {
		return err
	}
	ok, err := svc.repo.UpdateStudentPassword(ctx, stdt.ID, stdt.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
