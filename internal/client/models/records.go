package models

import "time"

// AssessmentRecord is a scored assessment as saved to and listed from the
// backend. Answers are keyed by item id.
type AssessmentRecord struct {
	Type    string      `json:"type"`
	Score   int         `json:"score"`
	Answers map[int]int `json:"answers"`
	Date    time.Time   `json:"date"`
}

type JournalEntry struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"date"`
}

type MoodEntry struct {
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
