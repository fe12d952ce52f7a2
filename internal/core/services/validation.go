package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type selfValidating interface {
	Validate() error
}

// validateRecord runs the struct tags and then the record's own Validate.
// Every failure wraps apperrors.ErrValidation.
func validateRecord(record any) error {
	if err := validate.Struct(record); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if v, ok := record.(selfValidating); ok {
		return v.Validate()
	}
	return nil
}
