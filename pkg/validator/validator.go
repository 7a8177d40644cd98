package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"hdwallet-core/pkg/errno"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report mapstructure keys (log_level) instead of Go field names
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its `validate` tags. Failures come back as
// errno.ErrBadInput with one message per field.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", errno.ErrBadInput, GetErrorMsg(err))
}

// GetErrorMsg translates validation errors into readable messages.
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var errMsgs []string
	for _, e := range validationErrors {
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		field = strings.ToLower(field)
		param := e.Param()

		switch e.Tag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("%s is required", field))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("%s must be at least %s", field, param))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("%s must be at most %s", field, param))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("%s must be one of [%s], got %q", field, param, fmt.Sprint(e.Value())))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("%s failed %s validation", field, e.Tag()))
		}
	}
	return strings.Join(errMsgs, "; ")
}
