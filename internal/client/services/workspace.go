package services

import (
	"context"

	"github.com/dmitrijs2005/zenora/internal/assessment"
	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/task"
)

// SaveTask is the background save started by Workspace.Submit. Its owner is
// the attempt id.
type SaveTask = task.Task[models.AssessmentRecord]

// Workspace is the assessment screen: one instrument, one attempt at a
// time, and at most one save in flight. Like an Attempt it expects its
// callers to serialize calls.
type Workspace struct {
	svc     *AssessmentService
	attempt *assessment.Attempt
	pending *SaveTask
}

// NewWorkspace opens the screen on kind with an empty attempt.
func (s *AssessmentService) NewWorkspace(kind assessment.Kind) (*Workspace, error) {
	a, err := assessment.NewAttempt(kind)
	if err != nil {
		return nil, err
	}
	return &Workspace{svc: s, attempt: a}, nil
}

func (w *Workspace) Attempt() *assessment.Attempt { return w.attempt }

// Pending returns the in-flight save, if any.
func (w *Workspace) Pending() *SaveTask { return w.pending }

func (w *Workspace) Answer(itemID, value int) error {
	return w.attempt.Answer(itemID, value)
}

// Reset starts over on the same instrument. A save still in flight for the
// submitted attempt keeps running but no longer belongs to the workspace.
func (w *Workspace) Reset() {
	w.detach()
	w.attempt = w.attempt.Reset()
}

// Switch moves to another instrument. It always resets; answers are never
// carried across.
func (w *Workspace) Switch(kind assessment.Kind) error {
	a, err := assessment.NewAttempt(kind)
	if err != nil {
		return err
	}
	w.detach()
	w.attempt = a
	return nil
}

func (w *Workspace) detach() {
	w.pending = nil
}

// Submit scores the current attempt and returns the result at once. For a
// signed-in user the save runs in the background and is returned as a task;
// otherwise the task is nil.
func (w *Workspace) Submit(ctx context.Context) (assessment.Result, *SaveTask, error) {
	res, err := w.attempt.Submit(w.svc.now())
	if err != nil {
		return assessment.Result{}, nil, err
	}
	if !w.svc.shouldPersist() {
		return res, nil, nil
	}

	w.pending = task.Go(ctx, res.AttemptID, func(ctx context.Context) (models.AssessmentRecord, error) {
		return w.svc.persist(ctx, res)
	})
	return res, w.pending, nil
}

// Resolve reports whether a finished save still belongs to the current
// attempt. Stale tasks must be ignored by the caller.
func (w *Workspace) Resolve(t *SaveTask) bool {
	if t == nil || t.Owner() != w.attempt.ID() {
		return false
	}
	if w.pending == t {
		w.pending = nil
	}
	return true
}
