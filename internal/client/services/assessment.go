package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zenora/internal/assessment"
	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/session"
	"github.com/dmitrijs2005/zenora/internal/logging"
)

// AssessmentStore is the assessment half of the backend.
type AssessmentStore interface {
	SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error
	ListAssessments(ctx context.Context) ([]models.AssessmentRecord, error)
}

// SessionReader yields the current session snapshot.
type SessionReader interface {
	Current() session.Session
}

// SaveStatus tells what happened to a result after scoring.
type SaveStatus int

const (
	// SaveSkipped means there was no session, so nothing was sent.
	SaveSkipped SaveStatus = iota
	Saved
	SaveFailed
)

// SubmitOutcome always carries the result. A failed save is reported in
// SaveErr and never replaces the result.
type SubmitOutcome struct {
	Result  assessment.Result
	Status  SaveStatus
	SaveErr error
}

type AssessmentService struct {
	store    AssessmentStore
	sessions SessionReader
	log      logging.Logger
	now      func() time.Time
}

func NewAssessmentService(store AssessmentStore, sessions SessionReader, log logging.Logger) *AssessmentService {
	if log == nil {
		log = logging.Discard()
	}
	return &AssessmentService{store: store, sessions: sessions, log: log, now: time.Now}
}

// Submit scores a and, for a signed-in user, saves the result before
// returning. Validation failures (incomplete or already submitted) are
// returned as the error and nothing is sent.
func (s *AssessmentService) Submit(ctx context.Context, a *assessment.Attempt) (SubmitOutcome, error) {
	res, err := a.Submit(s.now())
	if err != nil {
		return SubmitOutcome{}, err
	}

	out := SubmitOutcome{Result: res}
	if !s.shouldPersist() {
		return out, nil
	}

	if _, err := s.persist(ctx, res); err != nil {
		out.Status, out.SaveErr = SaveFailed, err
		return out, nil
	}
	out.Status = Saved
	return out, nil
}

func (s *AssessmentService) shouldPersist() bool {
	return s.sessions != nil && s.sessions.Current().IsAuthenticated()
}

// persist sends one result to the backend.
func (s *AssessmentService) persist(ctx context.Context, res assessment.Result) (models.AssessmentRecord, error) {
	rec := models.AssessmentRecord{
		Type:    string(res.Kind),
		Score:   res.Total,
		Answers: res.Responses,
		Date:    res.CompletedAt,
	}
	if err := s.store.SaveAssessment(ctx, rec); err != nil {
		s.log.Warn(ctx, "failed to save assessment", "attempt_id", res.AttemptID.String(), "error", err)
		return rec, err
	}
	s.log.Debug(ctx, "assessment saved", "attempt_id", res.AttemptID.String(), "type", rec.Type, "score", rec.Score)
	return rec, nil
}

// History lists results saved for the signed-in user.
func (s *AssessmentService) History(ctx context.Context) ([]models.AssessmentRecord, error) {
	return s.store.ListAssessments(ctx)
}
