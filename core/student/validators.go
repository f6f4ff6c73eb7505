package student

import (
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aulahub/academia/core"
)

var (
	pwdPolicyTag  = "pwdpolicy"
	pwdPolicyText = "password must contain only letters and digits, with at least 1 letter and 1 digit"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(pwdPolicyTag, pwdPolicyValidation)
	core.RegisterCustomTranslation(validate, translator, pwdPolicyTag, pwdPolicyText)
}

// ValidatePassword applies the password rules to a bare password (e.g. one typed in a terminal).
func ValidatePassword(validate *validator.Validate, pwd string) error {
	return validate.Var(pwd, "required,min=6,max=100,"+pwdPolicyTag)
}

// pwdPolicyValidation only allows ASCII letters and digits, and requires at least one of each.
func pwdPolicyValidation(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit bool
	for _, char := range fl.Field().String() {
		switch {
		case char > unicode.MaxASCII:
			return false
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}
