package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginForm is what the login screen collects.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignupForm is what the signup screen collects.
type SignupForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func (f *LoginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

func (f *SignupForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

// validateForm runs the struct tags and reduces the outcome to a single
// sentinel. Missing fields win over malformed ones, and malformed email wins
// over a confirmation mismatch.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	has := func(tag string) bool {
		for _, fe := range verrs {
			if fe.Tag() == tag {
				return true
			}
		}
		return false
	}

	switch {
	case has("required"):
		return ErrMissingFields
	case has("email"):
		return ErrInvalidEmail
	case has("eqfield"):
		return ErrPasswordMismatch
	default:
		return err
	}
}
