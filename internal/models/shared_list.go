package models

import "time"

type SharedList struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	GroupID     uint                 `gorm:"not null;index" json:"group_id"`
	Name        string               `gorm:"size:255;not null" json:"name"`
	Description string               `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   uint                 `gorm:"not null" json:"created_by"`
	Questions   []SharedListQuestion `gorm:"foreignKey:ListID" json:"questions,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type SharedListQuestion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ListID     uint      `gorm:"not null;index" json:"list_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	URL        string    `gorm:"size:500" json:"url,omitempty"`
	Platform   string    `gorm:"size:50" json:"platform,omitempty"`
	Difficulty string    `gorm:"size:20" json:"difficulty,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SharedListProgress struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	QuestionID uint       `gorm:"not null;uniqueIndex:idx_question_user" json:"question_id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_question_user" json:"user_id"`
	Solved     bool       `gorm:"not null;default:false" json:"solved"`
	SolvedAt   *time.Time `json:"solved_at,omitempty"`
}
