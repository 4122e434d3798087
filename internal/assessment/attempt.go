package assessment

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Result is the frozen outcome of a submitted attempt.
type Result struct {
	AttemptID   uuid.UUID
	Kind        Kind
	Total       int
	Band        Band
	Support     string
	Responses   map[int]int
	CompletedAt time.Time
}

// Attempt is one run through an instrument. Answers are upserted until
// Submit freezes the attempt; after that it is read-only.
//
// An Attempt is not safe for concurrent mutation. Callers serialize
// Answer/Submit the same way a UI serializes input events.
type Attempt struct {
	id         uuid.UUID
	instrument *Instrument
	responses  map[int]int
	result     *Result
}

// NewAttempt starts an empty attempt on the given instrument.
func NewAttempt(kind Kind) (*Attempt, error) {
	in, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return newAttempt(in), nil
}

func newAttempt(in *Instrument) *Attempt {
	return &Attempt{
		id:         uuid.New(),
		instrument: in,
		responses:  make(map[int]int, len(in.Items)),
	}
}

// ID identifies this attempt. A reset attempt gets a new ID.
func (a *Attempt) ID() uuid.UUID { return a.id }

func (a *Attempt) Instrument() *Instrument { return a.instrument }

func (a *Attempt) Kind() Kind { return a.instrument.Kind }

// Answer records value for itemID, replacing any earlier choice.
func (a *Attempt) Answer(itemID, value int) error {
	if a.result != nil {
		return ErrAttemptFrozen
	}
	it, ok := a.instrument.item(itemID)
	if !ok {
		return ErrUnknownItem
	}
	if !it.allows(value) {
		return ErrInvalidResponse
	}
	a.responses[itemID] = value
	return nil
}

// Response returns the selected value for itemID, if any.
func (a *Attempt) Response(itemID int) (int, bool) {
	v, ok := a.responses[itemID]
	return v, ok
}

// Responses returns a copy of the answers recorded so far.
func (a *Attempt) Responses() map[int]int {
	return maps.Clone(a.responses)
}

// Unanswered counts items without a response.
func (a *Attempt) Unanswered() int {
	n := 0
	for _, it := range a.instrument.Items {
		if _, ok := a.responses[it.ID]; !ok {
			n++
		}
	}
	return n
}

func (a *Attempt) IsComplete() bool {
	return a.Unanswered() == 0
}

// Submitted reports whether the attempt is frozen.
func (a *Attempt) Submitted() bool { return a.result != nil }

// Result returns the frozen result, or false if not yet submitted.
func (a *Attempt) Result() (Result, bool) {
	if a.result == nil {
		return Result{}, false
	}
	return *a.result, true
}

// Submit scores a complete attempt and freezes it. An incomplete attempt
// yields *IncompleteError and is left untouched.
func (a *Attempt) Submit(now time.Time) (Result, error) {
	if a.result != nil {
		return Result{}, ErrAttemptFrozen
	}
	if n := a.Unanswered(); n > 0 {
		return Result{}, &IncompleteError{Unanswered: n}
	}

	total := 0
	for _, it := range a.instrument.Items {
		total += a.responses[it.ID]
	}

	band, err := Interpret(a.instrument.Kind, total)
	if err != nil {
		return Result{}, err
	}

	a.result = &Result{
		AttemptID:   a.id,
		Kind:        a.instrument.Kind,
		Total:       total,
		Band:        band,
		Support:     SupportMessage(total),
		Responses:   maps.Clone(a.responses),
		CompletedAt: now.UTC(),
	}
	return *a.result, nil
}

// Reset discards answers and any frozen result, returning a fresh attempt
// on the same instrument. The receiver is left as it was.
func (a *Attempt) Reset() *Attempt {
	return newAttempt(a.instrument)
}
