package services

import (
	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return &user, nil
}

type PlatformLinks struct {
	LeetcodeUsername *string `json:"leetcode_username"`
	CodeforcesHandle *string `json:"codeforces_handle"`
	GFGUsername      *string `json:"gfg_username"`
}

// UpdatePlatformLinks changes only the handles that were supplied.
func (s *UserService) UpdatePlatformLinks(userID uint, links PlatformLinks) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}

	if links.LeetcodeUsername != nil {
		user.LeetcodeUsername = *links.LeetcodeUsername
	}
	if links.CodeforcesHandle != nil {
		user.CodeforcesHandle = *links.CodeforcesHandle
	}
	if links.GFGUsername != nil {
		user.GFGUsername = *links.GFGUsername
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
