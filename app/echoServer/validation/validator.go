package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// Fields flattens a validator error into field->constraint pairs for
// 400 responses.
func Fields(err error) map[string]string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}
	out := make(map[string]string, len(ves))
	for _, fe := range ves {
		out[strings.ToLower(fe.Field()[:1])+fe.Field()[1:]] = fe.Tag()
	}
	return out
}
