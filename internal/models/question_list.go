package models

import "time"

type QuestionList struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Public      bool           `gorm:"not null;default:false" json:"public"`
	Questions   []ListQuestion `gorm:"foreignKey:ListID" json:"questions,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ListQuestion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ListID     uint      `gorm:"not null;index" json:"list_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	URL        string    `gorm:"size:500" json:"url,omitempty"`
	Platform   string    `gorm:"size:50" json:"platform,omitempty"`
	Difficulty string    `gorm:"size:20" json:"difficulty,omitempty"`
	Solved     bool      `gorm:"not null;default:false" json:"solved"`
	CreatedAt  time.Time `json:"created_at"`
}
