package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/takenotes/pkg/api"
)

// ErrInvalid is wrapped by every error returned from this package
var ErrInvalid = errors.New("validation failed")

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// в сообщениях используем имена полей из JSON
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// NormalizeRegister returns a copy of req with surrounding whitespace removed
func NormalizeRegister(req api.RegisterRequest) api.RegisterRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	return req
}

// NormalizeLogin returns a copy of req with surrounding whitespace removed
func NormalizeLogin(req api.LoginRequest) api.LoginRequest {
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	return req
}

// ValidateRegister checks the registration form.
// Name: 4-50 characters, email and password: 8-50 characters.
func ValidateRegister(req api.RegisterRequest) error {
	return check(req)
}

// ValidateLogin checks the login form.
// Email and password: 8-50 characters.
func ValidateLogin(req api.LoginRequest) error {
	return check(req)
}

// ValidateNote checks the note form: title up to 500 characters,
// content up to 5000, optional hex background color.
func ValidateNote(req api.CreateNoteRequest) error {
	return check(req)
}

// ValidateResponse checks a decoded server response against its struct tags
func ValidateResponse(v any) error {
	return check(v)
}

func check(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "min":
		switch field {
		case "name":
			return "Please enter your name."
		case "email":
			return "Please enter a valid email address."
		case "password":
			return fmt.Sprintf("Password must be at least %s characters long.", minParam(fe))
		}
		if fe.Tag() == "min" {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #AFDBF5", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// minParam возвращает нижнюю границу, в том числе для ошибок тега required
func minParam(fe validator.FieldError) string {
	if fe.Tag() == "min" {
		return fe.Param()
	}
	return "8"
}
