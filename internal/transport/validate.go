package transport

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrInvalidRequest heads the error chain of a request that failed validation.
var ErrInvalidRequest = errors.New("invalid request")

var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := []error{ErrInvalidRequest}
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return errors.Join(errs...)
}
