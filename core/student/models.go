package student

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/aulahub/academia/core"
)

// OrderingFields lists the fields a student list can be ordered by.
var OrderingFields = []string{"id", "name", "age", "email", "credits"}

type Student struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	Age          int    `db:"age"`
	Email        string `db:"email"`
	PasswordHash []byte `db:"password_hash"`
	Credits      int    `db:"credits"`
}

func (s *Student) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.PasswordHash = hash
	return nil
}

// CheckPassword compares pwd with the stored hash in constant time.
func (s *Student) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(pwd))
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name     string `json:"name" validate:"required,max=50"`
	Age      int    `json:"age" validate:"min=0,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100,pwdpolicy"`
	Credits  int    `json:"credits" validate:"min=0,max=300"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return validate.Struct(ns)
}

// UpdateStudent replaces every field of an existing Student.
// An omitted, null or blank Password keeps the current one.
type UpdateStudent struct {
	ID       int         `json:"id" validate:"required,dbid"`
	Name     string      `json:"name" validate:"required,max=50"`
	Age      int         `json:"age" validate:"min=0,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password null.String `json:"password" validate:"omitempty,min=6,max=100,pwdpolicy"`
	Credits  int         `json:"credits" validate:"min=0,max=300"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Email = core.CleanString(us.Email, true /* lower */)
	if us.Password.Valid {
		us.Password.String = core.CleanString(us.Password.String)
	}
	return validate.Struct(us)
}

// HasPassword reports whether the update carries a new password.
func (us UpdateStudent) HasPassword() bool {
	return us.Password.Valid && us.Password.String != ""
}

// StudentDTO is the read representation of a Student. It never carries the password.
type StudentDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`
}
