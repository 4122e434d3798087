package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/zenora/internal/client/models"
)

type JournalStore interface {
	SaveJournal(ctx context.Context, entry models.JournalEntry) error
	ListJournal(ctx context.Context) ([]models.JournalEntry, error)
}

type JournalService struct {
	store JournalStore
	now   func() time.Time
}

func NewJournalService(store JournalStore) *JournalService {
	return &JournalService{store: store, now: time.Now}
}

// Save records an entry. Title and content are required after trimming.
func (s *JournalService) Save(ctx context.Context, title, content string) (models.JournalEntry, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" {
		return models.JournalEntry{}, ErrMissingTitle
	}
	if content == "" {
		return models.JournalEntry{}, ErrMissingContent
	}

	entry := models.JournalEntry{Title: title, Content: content, CreatedAt: s.now().UTC()}
	if err := s.store.SaveJournal(ctx, entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (s *JournalService) List(ctx context.Context) ([]models.JournalEntry, error) {
	return s.store.ListJournal(ctx)
}
