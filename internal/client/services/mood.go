package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/zenora/internal/client/models"
)

// Moods is the fixed set a user can log, in display order.
var Moods = []string{"Happy", "Calm", "Neutral", "Sad", "Angry", "Anxious", "Tired", "Excited"}

// ParseMood matches s against Moods ignoring case.
func ParseMood(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingMood
	}
	for _, m := range Moods {
		if strings.EqualFold(m, s) {
			return m, nil
		}
	}
	return "", ErrUnknownMood
}

type MoodStore interface {
	SaveMood(ctx context.Context, entry models.MoodEntry) error
	ListMoods(ctx context.Context) ([]models.MoodEntry, error)
}

type MoodService struct {
	store MoodStore
	now   func() time.Time
}

func NewMoodService(store MoodStore) *MoodService {
	return &MoodService{store: store, now: time.Now}
}

// Log records how the user feels. The note is optional.
func (s *MoodService) Log(ctx context.Context, mood, note string) (models.MoodEntry, error) {
	m, err := ParseMood(mood)
	if err != nil {
		return models.MoodEntry{}, err
	}

	entry := models.MoodEntry{Mood: m, Note: strings.TrimSpace(note), CreatedAt: s.now().UTC()}
	if err := s.store.SaveMood(ctx, entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (s *MoodService) List(ctx context.Context) ([]models.MoodEntry, error) {
	return s.store.ListMoods(ctx)
}
