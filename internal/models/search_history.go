package models

import "time"

type SearchHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Platform   string    `gorm:"size:50;not null" json:"platform"`
	Identifier string    `gorm:"size:100;not null" json:"identifier"`
	SearchedAt time.Time `json:"searched_at"`
}
