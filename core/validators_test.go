package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
)

func newTestValidator() (*validator.Validate, func(error) map[string]string) {
	translator := NewTranslator()
	validate := validator.New()
	InitValidators(validate, translator)

	translate := func(err error) map[string]string {
		out := make(map[string]string)
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range vErrs {
				out[fe.Field()] = fe.Translate(translator)
			}
		}
		return out
	}
	return validate, translate
}

func TestInitValidators(t *testing.T) {
	type payload struct {
		Title    string      `json:"title" validate:"required,notblank"`
		Nickname null.String `json:"nickname" validate:"omitempty,min=3"`
		Due      Date        `json:"due" validate:"required"`
	}
	validate, translate := newTestValidator()

	tests := []struct {
		name string
		in   payload
		want map[string]string
	}{
		{
			name: "valid",
			in:   payload{Title: "Quiz", Nickname: null.StringFrom("quizzy"), Due: NewDate(2024, 3, 1)},
			want: map[string]string{},
		},
		{
			name: "null nickname is skipped",
			in:   payload{Title: "Quiz", Due: NewDate(2024, 3, 1)},
			want: map[string]string{},
		},
		{
			name: "json names and custom messages",
			in:   payload{Title: "  ", Nickname: null.StringFrom("q")},
			want: map[string]string{
				"title":    "this field cannot be blank",
				"nickname": "nickname must be at least 3 characters in length",
				"due":      "this field is required",
			},
		},
		{
			name: "required",
			in:   payload{Due: NewDate(2024, 3, 1)},
			want: map[string]string{"title": "this field is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(validate.Struct(tt.in))
			if len(got) != len(tt.want) {
				t.Fatalf("validate.Struct() = %v, want %v", got, tt.want)
			}
			for fld, msg := range tt.want {
				if got[fld] != msg {
					t.Errorf("validate.Struct()[%s] = %q, want %q", fld, got[fld], msg)
				}
			}
		})
	}
}

func TestDBIDValidation(t *testing.T) {
	type payload struct {
		RefID int `json:"ref_id" validate:"required,dbid"`
	}
	validate, translate := newTestValidator()

	tests := []struct {
		id   int
		want string
	}{
		{id: 1},
		{id: MaxID},
		{id: 0, want: "this field is required"},
		{id: -3, want: "this field must be a valid id"},
		{id: MaxID + 1, want: "this field must be a valid id"},
	}
	for _, tt := range tests {
		got := translate(validate.Struct(payload{RefID: tt.id}))["ref_id"]
		if got != tt.want {
			t.Errorf("validate.Struct(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestCleanString(t *testing.T) {
	if got := CleanString("  Ana@Test.EDU \n"); got != "Ana@Test.EDU" {
		t.Errorf("CleanString() = %q", got)
	}
	if got := CleanString("  Ana@Test.EDU \n", true); got != "ana@test.edu" {
		t.Errorf("CleanString(lower) = %q", got)
	}
}
