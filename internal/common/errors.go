package common

import "errors"

// ErrValidation is the parent of every form validation error.
var ErrValidation = errors.New("validation error")
