package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash     string    `gorm:"size:255;not null" json:"-"`
	LeetcodeUsername string    `gorm:"size:100" json:"leetcode_username,omitempty"`
	CodeforcesHandle string    `gorm:"size:100" json:"codeforces_handle,omitempty"`
	GFGUsername      string    `gorm:"size:100" json:"gfg_username,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
