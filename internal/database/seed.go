package database

import (
	"log"
	"time"

	"codetrack-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the demo accounts on a fresh database. It runs once at startup
// under the caller's control instead of as an import side effect, and is a no-op
// when the users already exist.
func Seed(db *gorm.DB) {
	demos := []models.User{
		{
			Username:         "demo",
			LeetcodeUsername: "demo_lc",
			CodeforcesHandle: "demo_cf",
			GFGUsername:      "demo_gfg",
		},
		{Username: "alice", LeetcodeUsername: "alice"},
		{Username: "bob", CodeforcesHandle: "bob"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed: hash error: %v", err)
		return
	}

	for _, u := range demos {
		var existing models.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			continue
		}
		u.PasswordHash = string(hash)
		u.CreatedAt = time.Now()
		if err := db.Create(&u).Error; err != nil {
			log.Printf("seed: create %s: %v", u.Username, err)
		}
	}
}
