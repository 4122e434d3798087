package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/session"
)

// fakeBackend implements every collaborator interface in this package.
type fakeBackend struct {
	mu sync.Mutex

	authResp  models.AuthResponse
	authErr   error
	lastEmail string
	lastPass  string
	lastName  string
	logins    int
	signups   int

	saveErr     error
	saveBlock   chan struct{} // when set, SaveAssessment waits on it or ctx
	assessments []models.AssessmentRecord
	saves       int

	journal []models.JournalEntry
	moods   []models.MoodEntry
	listErr error
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	f.lastEmail, f.lastPass = email, password
	return f.authResp, f.authErr
}

func (f *fakeBackend) Signup(_ context.Context, name, email, password string) (models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signups++
	f.lastName, f.lastEmail, f.lastPass = name, email, password
	return f.authResp, f.authErr
}

func (f *fakeBackend) SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error {
	f.mu.Lock()
	f.saves++
	block := f.saveBlock
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.assessments = append(f.assessments, rec)
	return nil
}

func (f *fakeBackend) ListAssessments(context.Context) ([]models.AssessmentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AssessmentRecord(nil), f.assessments...), f.listErr
}

func (f *fakeBackend) SaveJournal(_ context.Context, e models.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.journal = append(f.journal, e)
	return nil
}

func (f *fakeBackend) ListJournal(context.Context) ([]models.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.JournalEntry(nil), f.journal...), f.listErr
}

func (f *fakeBackend) SaveMood(_ context.Context, e models.MoodEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.moods = append(f.moods, e)
	return nil
}

func (f *fakeBackend) ListMoods(context.Context) ([]models.MoodEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.MoodEntry(nil), f.moods...), f.listErr
}

func (f *fakeBackend) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

var ann = models.User{ID: "u1", Name: "Ann", Email: "ann@example.org"}

func authedStore(t interface{ Helper() }) *session.Store {
	t.Helper()
	s := session.NewStore(nil, nil)
	s.Rehydrate(context.Background())
	_ = s.Login(context.Background(), ann, "tok")
	return s
}

func anonStore() *session.Store {
	s := session.NewStore(nil, nil)
	s.Rehydrate(context.Background())
	return s
}
