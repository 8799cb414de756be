package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"bookverse-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds failures into the
// ErrValidation taxonomy so the error handler renders them as 400s.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return apperr.Validation(strings.Join(fields, ", "))
		}
		return apperr.Validation(err.Error())
	}
	return nil
}
