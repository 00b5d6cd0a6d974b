package models

import "time"

type Contest struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null;index" json:"name"`
	Platform        string    `gorm:"size:50;not null;index" json:"platform"`
	URL             string    `gorm:"size:500" json:"url,omitempty"`
	StartTime       time.Time `gorm:"not null;index" json:"start_time"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

type ContestParticipation struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_user_contest" json:"user_id"`
	ContestID    uint `gorm:"not null;uniqueIndex:idx_user_contest" json:"contest_id"`
	Participated bool `gorm:"not null;default:false" json:"participated"`
}
