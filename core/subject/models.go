package subject

import (
	"github.com/go-playground/validator/v10"

	"github.com/aulahub/academia/core"
)

var OrderingFields = []string{"id", "name", "credits"}

type Subject struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Credits int    `db:"credits"`
}

type NewSubject struct {
	Name    string `json:"name" validate:"required,max=100"`
	Credits int    `json:"credits" validate:"min=0,max=2147483647"`
}

func (ns *NewSubject) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	return validate.Struct(ns)
}

type UpdateSubject struct {
	ID      int    `json:"id" validate:"required,dbid"`
	Name    string `json:"name" validate:"required,max=100"`
	Credits int    `json:"credits" validate:"min=0,max=2147483647"`
}

func (us *UpdateSubject) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	return validate.Struct(us)
}

type SubjectDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}
