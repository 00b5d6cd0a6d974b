package services

import (
	"testing"

	"codetrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTallyCountsEveryCorrectRow(t *testing.T) {
	scoring := NewScoringService()
	points := map[uint]int{1: 100, 2: 150}
	subs := []models.TestSubmission{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: true},
		{QuestionID: 2, IsCorrect: false},
	}

	var entry ResultEntry
	scoring.Tally(&entry, subs, points, false)
	assert.Equal(t, 350, entry.Points)
	assert.Equal(t, 3, entry.Solved)
}

func TestTallyDedup(t *testing.T) {
	scoring := NewScoringService()
	points := map[uint]int{1: 100, 2: 150}
	subs := []models.TestSubmission{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: true},
	}

	var entry ResultEntry
	scoring.Tally(&entry, subs, points, true)
	assert.Equal(t, 250, entry.Points)
	assert.Equal(t, 2, entry.Solved)
}

func TestTallyIncorrectOnly(t *testing.T) {
	scoring := NewScoringService()

	var entry ResultEntry
	scoring.Tally(&entry, []models.TestSubmission{{QuestionID: 1, IsCorrect: false}}, map[uint]int{1: 100}, false)
	assert.Zero(t, entry.Points)
	assert.Zero(t, entry.Solved)
}

func TestRankStableOnTies(t *testing.T) {
	scoring := NewScoringService()
	entries := []ResultEntry{
		{UserID: 1, Points: 100},
		{UserID: 2, Points: 250},
		{UserID: 3, Points: 100},
	}

	scoring.Rank(entries)
	assert.Equal(t, uint(2), entries[0].UserID)
	assert.Equal(t, uint(1), entries[1].UserID)
	assert.Equal(t, uint(3), entries[2].UserID, "ties keep insertion order")
}
