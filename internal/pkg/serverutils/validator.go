package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"paddy-kbs-be/internal/entity"
)

var validate = validator.New()

// ValidateRequest runs the struct's validate tags and reports every failing
// field in one VALIDATION_FAILED error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return entity.NewError(entity.KindValidation, "invalid request", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", lowerFirst(fe.Field()), fe.Tag()))
	}
	return entity.NewError(entity.KindValidation, strings.Join(msgs, "; "), nil)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
