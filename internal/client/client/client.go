package client

import (
	"context"

	"github.com/dmitrijs2005/zenora/internal/client/models"
)

// Client is the collaborator contract with the Zenora backend. Calls made
// while a session exists carry its credential; without one they go out
// unauthenticated and the backend decides.
type Client interface {
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (models.AuthResponse, error)

	SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error
	ListAssessments(ctx context.Context) ([]models.AssessmentRecord, error)

	SaveJournal(ctx context.Context, entry models.JournalEntry) error
	ListJournal(ctx context.Context) ([]models.JournalEntry, error)

	SaveMood(ctx context.Context, entry models.MoodEntry) error
	ListMoods(ctx context.Context) ([]models.MoodEntry, error)
}

// TokenSource yields the credential to attach to outbound requests. An
// empty string means "no session".
type TokenSource interface {
	Token() string
}
