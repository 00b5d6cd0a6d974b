package models

import "time"

type PrivateTest struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	GroupID         uint           `gorm:"not null;index" json:"group_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	CreatedBy       uint           `gorm:"not null" json:"created_by"`
	StartTime       time.Time      `gorm:"not null" json:"start_time"`
	DurationMinutes int            `gorm:"not null" json:"duration_minutes"`
	Difficulty      string         `gorm:"size:20" json:"difficulty,omitempty"`
	NumQuestions    int            `gorm:"not null" json:"num_questions"`
	Status          string         `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Questions       []TestQuestion `gorm:"foreignKey:TestID" json:"questions,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

const (
	TestStatusScheduled = "scheduled"
	TestStatusActive    = "active"
	TestStatusCompleted = "completed"
)

func ValidTestStatus(s string) bool {
	return s == TestStatusScheduled || s == TestStatusActive || s == TestStatusCompleted
}

type TestQuestion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TestID     uint      `gorm:"not null;index" json:"test_id"`
	QuestionID string    `gorm:"size:255;not null" json:"question_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	URL        string    `gorm:"size:500" json:"url,omitempty"`
	Platform   string    `gorm:"size:50" json:"platform,omitempty"`
	Difficulty string    `gorm:"size:20" json:"difficulty,omitempty"`
	Points     int       `gorm:"not null;default:100" json:"points"`
	CreatedAt  time.Time `json:"created_at"`
}

type TestParticipant struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TestID   uint      `gorm:"not null;uniqueIndex:idx_test_user" json:"test_id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_test_user" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// TestSubmission rows are append-only; the same (test, question, user) triple may
// repeat, and scoring counts each correct row.
type TestSubmission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TestID      uint      `gorm:"not null;index" json:"test_id"`
	QuestionID  uint      `gorm:"not null" json:"question_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	IsCorrect   bool      `gorm:"not null" json:"is_correct"`
	SubmittedAt time.Time `json:"submitted_at"`
}
