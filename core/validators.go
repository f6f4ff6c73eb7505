package core

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/volatiletech/null/v8"
)

var (
	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "this field cannot be blank"

	requiredTag  = "required"
	requiredText = "this field is required"

	dbIDTag  = "dbid"
	dbIDText = "this field must be a valid id"
)

// MaxID is the largest value a SERIAL column can hold.
const MaxID = math.MaxInt32

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// validate nullable & date fields by their underlying values
	validate.RegisterCustomTypeFunc(nullStringValue, null.String{})
	validate.RegisterCustomTypeFunc(dateValue, Date{})

	// register custom validators
	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(validate, translator, notBlankTag, notBlankText)

	_ = validate.RegisterValidation(dbIDTag, dbIDValidation)
	RegisterCustomTranslation(validate, translator, dbIDTag, dbIDText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

func nullStringValue(field reflect.Value) interface{} {
	if s, ok := field.Interface().(null.String); ok && s.Valid {
		return s.String
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(Date); ok && !d.IsZero() {
		return d.String()
	}
	return ""
}

// Custom Global Validators

// notBlankValidation rejects strings made of whitespace only.
func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// dbIDValidation accepts ids a SERIAL column can hold.
func dbIDValidation(fl validator.FieldLevel) bool {
	id := fl.Field().Int()
	return id >= 1 && id <= MaxID
}
