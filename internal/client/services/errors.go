package services

import (
	"fmt"

	"github.com/dmitrijs2005/zenora/internal/common"
)

// Validation failures. All of them match common.ErrValidation.
var (
	ErrMissingFields    = fmt.Errorf("%w: missing information", common.ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email address", common.ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords don't match", common.ErrValidation)
	ErrMissingTitle     = fmt.Errorf("%w: missing title", common.ErrValidation)
	ErrMissingContent   = fmt.Errorf("%w: missing content", common.ErrValidation)
	ErrMissingMood      = fmt.Errorf("%w: missing mood selection", common.ErrValidation)
	ErrUnknownMood      = fmt.Errorf("%w: unknown mood", common.ErrValidation)
)
