package services

import (
	"sort"

	"codetrack-backend/internal/models"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ResultEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Solved   int    `json:"solved"`
}

// Tally accumulates one participant's score over all their submissions. Every
// correct submission row counts: a question submitted correct twice adds its
// points twice. With dedup set (strict mode) each question counts at most once.
func (s *ScoringService) Tally(entry *ResultEntry, submissions []models.TestSubmission, questionPoints map[uint]int, dedup bool) {
	counted := make(map[uint]bool)
	for _, sub := range submissions {
		if !sub.IsCorrect {
			continue
		}
		if dedup && counted[sub.QuestionID] {
			continue
		}
		counted[sub.QuestionID] = true
		entry.Solved++
		entry.Points += questionPoints[sub.QuestionID]
	}
}

// Rank sorts descending by points. Ties keep their existing order; no tiebreak
// is defined.
func (s *ScoringService) Rank(entries []ResultEntry) {
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Points > entries[b].Points
	})
}
