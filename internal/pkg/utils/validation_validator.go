package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	tutorIDRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("tutor_id", validateTutorID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a tag list, e.g. a URL param.
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

func validateTutorID(fl validator.FieldLevel) bool {
	return tutorIDRegexp.MatchString(fl.Field().String())
}
