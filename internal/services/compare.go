package services

import (
	"time"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"
	"codetrack-backend/internal/platforms"

	"gorm.io/gorm"
)

// CompareService combines up to three platform profiles into one bundle. Every
// call re-fetches; nothing is cached.
type CompareService struct {
	db         *gorm.DB
	leetcode   platforms.Fetcher
	codeforces platforms.Fetcher
	gfg        platforms.Fetcher
}

func NewCompareService(db *gorm.DB, leetcode, codeforces, gfg platforms.Fetcher) *CompareService {
	return &CompareService{db: db, leetcode: leetcode, codeforces: codeforces, gfg: gfg}
}

type CompareRequest struct {
	LeetcodeUsername string `json:"leetcodeUsername"`
	CodeforcesHandle string `json:"codeforcesHandle"`
	GFGUsername      string `json:"gfgUsername"`
}

type ComparisonBundle struct {
	Key        string                     `json:"key"`
	Leetcode   *platforms.PlatformProfile `json:"leetcode,omitempty"`
	Codeforces *platforms.PlatformProfile `json:"codeforces,omitempty"`
	GFG        *platforms.PlatformProfile `json:"gfg,omitempty"`
}

// Compare fetches each provided identifier. The bundle key is the first
// non-empty identifier in the order leetcode, codeforces, gfg. userID may be
// zero for anonymous callers; otherwise the lookups land in search history.
func (s *CompareService) Compare(userID uint, req CompareRequest) (*ComparisonBundle, error) {
	if req.LeetcodeUsername == "" && req.CodeforcesHandle == "" && req.GFGUsername == "" {
		return nil, apperr.Validation("at least one identifier is required")
	}

	bundle := &ComparisonBundle{Key: "comparison"}
	switch {
	case req.LeetcodeUsername != "":
		bundle.Key = req.LeetcodeUsername
	case req.CodeforcesHandle != "":
		bundle.Key = req.CodeforcesHandle
	case req.GFGUsername != "":
		bundle.Key = req.GFGUsername
	}

	if req.LeetcodeUsername != "" {
		bundle.Leetcode = s.leetcode.Fetch(req.LeetcodeUsername)
		s.recordSearch(userID, platforms.PlatformLeetcode, req.LeetcodeUsername)
	}
	if req.CodeforcesHandle != "" {
		bundle.Codeforces = s.codeforces.Fetch(req.CodeforcesHandle)
		s.recordSearch(userID, platforms.PlatformCodeforces, req.CodeforcesHandle)
	}
	if req.GFGUsername != "" {
		bundle.GFG = s.gfg.Fetch(req.GFGUsername)
		s.recordSearch(userID, platforms.PlatformGFG, req.GFGUsername)
	}

	return bundle, nil
}

// Fetch serves the single-platform profile endpoints.
func (s *CompareService) Fetch(userID uint, platform, identifier string) (*platforms.PlatformProfile, error) {
	var fetcher platforms.Fetcher
	switch platform {
	case platforms.PlatformLeetcode:
		fetcher = s.leetcode
	case platforms.PlatformCodeforces:
		fetcher = s.codeforces
	case platforms.PlatformGFG:
		fetcher = s.gfg
	default:
		return nil, apperr.Validation("unknown platform %q", platform)
	}
	if identifier == "" {
		return nil, apperr.Validation("identifier is required")
	}

	profile := fetcher.Fetch(identifier)
	s.recordSearch(userID, platform, identifier)
	return profile, nil
}

// recordSearch appends to search history, deduplicated per (platform,
// identifier) per user: a repeated lookup refreshes its timestamp instead of
// adding a row.
func (s *CompareService) recordSearch(userID uint, platform, identifier string) {
	if userID == 0 {
		return
	}

	var existing models.SearchHistory
	if err := s.db.Where("user_id = ? AND platform = ? AND identifier = ?",
		userID, platform, identifier).First(&existing).Error; err == nil {
		existing.SearchedAt = time.Now()
		s.db.Save(&existing)
		return
	}

	s.db.Create(&models.SearchHistory{
		UserID:     userID,
		Platform:   platform,
		Identifier: identifier,
		SearchedAt: time.Now(),
	})
}

func (s *CompareService) History(userID uint) ([]models.SearchHistory, error) {
	var history []models.SearchHistory
	if err := s.db.Where("user_id = ?", userID).
		Order("searched_at DESC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (s *CompareService) DeleteHistory(userID, historyID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", historyID, userID).
		Delete(&models.SearchHistory{})
	if result.RowsAffected == 0 {
		return apperr.NotFound("history entry not found")
	}
	return result.Error
}
