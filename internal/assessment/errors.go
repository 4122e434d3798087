package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownInstrument    = errors.New("unknown instrument")
	ErrUnknownItem          = errors.New("unknown item")
	ErrInvalidResponse      = errors.New("invalid response value")
	ErrScoreOutOfRange      = errors.New("score out of range")
	ErrIncompleteSubmission = errors.New("incomplete assessment")
	ErrAttemptFrozen        = errors.New("assessment already submitted")
)

// IncompleteError reports how many items are still unanswered.
// It matches ErrIncompleteSubmission with errors.Is.
type IncompleteError struct {
	Unanswered int
}

func (e *IncompleteError) Error() string {
	if e.Unanswered == 1 {
		return "incomplete assessment: 1 question unanswered"
	}
	return fmt.Sprintf("incomplete assessment: %d questions unanswered", e.Unanswered)
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}
