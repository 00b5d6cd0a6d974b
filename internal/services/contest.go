package services

import (
	"log"
	"strings"
	"time"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"
	"codetrack-backend/internal/platforms"

	cron "github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type ContestService struct {
	db      *gorm.DB
	sources []platforms.ContestSource
}

func NewContestService(db *gorm.DB, sources ...platforms.ContestSource) *ContestService {
	return &ContestService{db: db, sources: sources}
}

// Ingest stores new contests, deduplicating on (lowercased platform, name).
// First write wins: a later candidate with the same pair is dropped even when
// its URL or times differ. Candidates with unparseable start times are skipped.
func (s *ContestService) Ingest(candidates []platforms.ContestCandidate) {
	for _, c := range candidates {
		start, err := time.Parse(time.RFC3339, c.StartTime)
		if err != nil {
			log.Printf("contest: skipping %q, bad start time %q", c.Name, c.StartTime)
			continue
		}

		platform := strings.ToLower(c.Platform)
		var count int64
		s.db.Model(&models.Contest{}).
			Where("platform = ? AND name = ?", platform, c.Name).
			Count(&count)
		if count > 0 {
			continue
		}

		contest := models.Contest{
			Name:            c.Name,
			Platform:        platform,
			URL:             c.URL,
			StartTime:       start,
			DurationSeconds: c.DurationSeconds,
		}
		if err := s.db.Create(&contest).Error; err != nil {
			log.Printf("contest: insert %q: %v", c.Name, err)
		}
	}
}

func (s *ContestService) List() ([]models.Contest, error) {
	var contests []models.Contest
	if err := s.db.Order("start_time ASC").Find(&contests).Error; err != nil {
		return nil, err
	}
	return contests, nil
}

func (s *ContestService) Get(contestID uint) (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, apperr.NotFound("contest not found")
	}
	return &contest, nil
}

// SetParticipation upserts the flag for (user, contest).
func (s *ContestService) SetParticipation(userID, contestID uint, participated bool) (*models.ContestParticipation, error) {
	if _, err := s.Get(contestID); err != nil {
		return nil, err
	}

	var record models.ContestParticipation
	if err := s.db.Where("user_id = ? AND contest_id = ?", userID, contestID).
		First(&record).Error; err == nil {
		record.Participated = participated
		if err := s.db.Save(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}

	record = models.ContestParticipation{
		UserID:       userID,
		ContestID:    contestID,
		Participated: participated,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Refresh pulls upcoming contests from every source and ingests them. A failing
// source is logged and skipped; the others still land.
func (s *ContestService) Refresh() {
	for _, source := range s.sources {
		candidates, err := source.Upcoming()
		if err != nil {
			log.Printf("contest: source refresh failed: %v", err)
			continue
		}
		s.Ingest(candidates)
	}
}

func (s *ContestService) StartCronJob(spec string) {
	c := cron.New()
	c.AddFunc(spec, func() {
		log.Printf("contest: scheduled refresh")
		s.Refresh()
	})
	c.Start()
}
