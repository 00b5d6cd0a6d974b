package services

import (
	"strings"
	"time"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"gorm.io/gorm"
)

// TestService is the private-test state machine: scheduling, question
// assignment, participant join, submissions and results. Status never advances
// from wall-clock time; an admin or owner moves it explicitly.
type TestService struct {
	db      *gorm.DB
	groups  *GroupService
	scoring *ScoringService

	// strict enforces the historically soft invariants; see config.StrictTests.
	strict bool
}

func NewTestService(db *gorm.DB, groups *GroupService, scoring *ScoringService, strict bool) *TestService {
	return &TestService{db: db, groups: groups, scoring: scoring, strict: strict}
}

type TestSpec struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Difficulty      string `json:"difficulty"`
	NumQuestions    int    `json:"num_questions" binding:"required"`
}

func (s *TestService) CreateTest(actorID, groupID uint, spec TestSpec) (*models.PrivateTest, error) {
	if _, err := s.groups.getGroup(groupID); err != nil {
		return nil, err
	}
	if err := s.groups.requireManager(groupID, actorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(spec.Name) == "" {
		return nil, apperr.Validation("test name is required")
	}
	start, err := time.Parse(time.RFC3339, spec.StartTime)
	if err != nil {
		return nil, apperr.Validation("start_time must be RFC3339")
	}
	if spec.DurationMinutes < 5 {
		return nil, apperr.Validation("duration must be at least 5 minutes")
	}
	if spec.NumQuestions < 1 {
		return nil, apperr.Validation("test needs at least one question")
	}

	test := models.PrivateTest{
		GroupID:         groupID,
		Name:            spec.Name,
		Description:     spec.Description,
		CreatedBy:       actorID,
		StartTime:       start,
		DurationMinutes: spec.DurationMinutes,
		Difficulty:      spec.Difficulty,
		NumQuestions:    spec.NumQuestions,
		Status:          models.TestStatusScheduled,
	}
	if err := s.db.Create(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (s *TestService) ListTests(userID, groupID uint) ([]models.PrivateTest, error) {
	if _, err := s.groups.Membership(groupID, userID); err != nil {
		return nil, err
	}
	var tests []models.PrivateTest
	if err := s.db.Where("group_id = ?", groupID).
		Order("start_time ASC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

type TestDetail struct {
	Test         models.PrivateTest       `json:"test"`
	Questions    []models.TestQuestion    `json:"questions"`
	Participants []models.TestParticipant `json:"participants"`
}

func (s *TestService) GetTest(userID, testID uint) (*TestDetail, error) {
	test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(test.GroupID, userID); err != nil {
		return nil, err
	}

	detail := &TestDetail{Test: *test}
	s.db.Where("test_id = ?", testID).Order("created_at ASC").Find(&detail.Questions)
	s.db.Where("test_id = ?", testID).Order("joined_at ASC").Find(&detail.Participants)
	return detail, nil
}

type QuestionSpec struct {
	QuestionID string `json:"question_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty"`
	Points     int    `json:"points"`
}

// AddQuestions batch-inserts; points default to 100. The declared num_questions
// is a soft target and is only enforced as a cap in strict mode.
func (s *TestService) AddQuestions(actorID, testID uint, specs []QuestionSpec) ([]models.TestQuestion, error) {
	test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	if err := s.groups.requireManager(test.GroupID, actorID); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, apperr.Validation("no questions given")
	}

	if s.strict {
		var existing int64
		s.db.Model(&models.TestQuestion{}).Where("test_id = ?", testID).Count(&existing)
		if int(existing)+len(specs) > test.NumQuestions {
			return nil, apperr.Invariant("test only allows %d questions", test.NumQuestions)
		}
	}

	questions := make([]models.TestQuestion, 0, len(specs))
	for _, spec := range specs {
		points := spec.Points
		if points <= 0 {
			points = 100
		}
		q := models.TestQuestion{
			TestID:     testID,
			QuestionID: spec.QuestionID,
			Title:      spec.Title,
			URL:        spec.URL,
			Platform:   spec.Platform,
			Difficulty: spec.Difficulty,
			Points:     points,
		}
		if err := s.db.Create(&q).Error; err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (s *TestService) Join(userID, testID uint) (*models.TestParticipant, error) {
	test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(test.GroupID, userID); err != nil {
		return nil, err
	}
	if test.Status == models.TestStatusCompleted {
		return nil, apperr.Invariant("test is already completed")
	}

	var existing models.TestParticipant
	if err := s.db.Where("test_id = ? AND user_id = ?", testID, userID).
		First(&existing).Error; err == nil {
		return nil, apperr.Invariant("already joined this test")
	}

	participant := models.TestParticipant{
		TestID:   testID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// Submit appends a submission row unconditionally; resubmission of an
// already-answered question is allowed and both rows count in scoring.
func (s *TestService) Submit(userID, testID, questionID uint, isCorrect bool) (*models.TestSubmission, error) {
	test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}

	var participant models.TestParticipant
	if err := s.db.Where("test_id = ? AND user_id = ?", testID, userID).
		First(&participant).Error; err != nil {
		return nil, apperr.Forbidden("join the test before submitting")
	}

	var question models.TestQuestion
	if err := s.db.Where("id = ? AND test_id = ?", questionID, testID).
		First(&question).Error; err != nil {
		return nil, apperr.NotFound("question not found in this test")
	}

	if s.strict && test.Status != models.TestStatusActive {
		return nil, apperr.Invariant("test is not accepting submissions")
	}

	submission := models.TestSubmission{
		TestID:      testID,
		QuestionID:  questionID,
		UserID:      userID,
		IsCorrect:   isCorrect,
		SubmittedAt: time.Now(),
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// UpdateStatus accepts any recognized status; transitions are not validated as
// forward-only unless strict mode is on.
func (s *TestService) UpdateStatus(actorID, testID uint, newStatus string) (*models.PrivateTest, error) {
	if !models.ValidTestStatus(newStatus) {
		return nil, apperr.Validation("invalid status %q", newStatus)
	}

	test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	if err := s.groups.requireManager(test.GroupID, actorID); err != nil {
		return nil, err
	}

	if s.strict && statusRank(newStatus) < statusRank(test.Status) {
		return nil, apperr.Invariant("cannot move test back from %s to %s", test.Status, newStatus)
	}

	test.Status = newStatus
	if err := s.db.Save(test).Error; err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) DeleteTest(actorID, testID uint) error {
	test, err := s.getTest(testID)
	if err != nil {
		return err
	}
	if err := s.groups.requireManager(test.GroupID, actorID); err != nil {
		return err
	}

	s.db.Where("test_id = ?", testID).Delete(&models.TestSubmission{})
	s.db.Where("test_id = ?", testID).Delete(&models.TestParticipant{})
	s.db.Where("test_id = ?", testID).Delete(&models.TestQuestion{})
	return s.db.Delete(test).Error
}

// Results ranks all current participants by accumulated points.
func (s *TestService) Results(userID, testID uint) ([]ResultEntry, error) {
	test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(test.GroupID, userID); err != nil {
		return nil, err
	}

	var questions []models.TestQuestion
	s.db.Where("test_id = ?", testID).Find(&questions)
	questionPoints := make(map[uint]int, len(questions))
	for _, q := range questions {
		questionPoints[q.ID] = q.Points
	}

	var participants []models.TestParticipant
	s.db.Where("test_id = ?", testID).Order("joined_at ASC").Find(&participants)

	entries := make([]ResultEntry, 0, len(participants))
	for _, p := range participants {
		entry := ResultEntry{UserID: p.UserID}

		var user models.User
		if err := s.db.First(&user, p.UserID).Error; err == nil {
			entry.Username = user.Username
		}

		var submissions []models.TestSubmission
		s.db.Where("test_id = ? AND user_id = ?", testID, p.UserID).
			Order("submitted_at ASC").
			Find(&submissions)

		s.scoring.Tally(&entry, submissions, questionPoints, s.strict)
		entries = append(entries, entry)
	}

	s.scoring.Rank(entries)
	return entries, nil
}

func (s *TestService) getTest(testID uint) (*models.PrivateTest, error) {
	var test models.PrivateTest
	if err := s.db.First(&test, testID).Error; err != nil {
		return nil, apperr.NotFound("test not found")
	}
	return &test, nil
}

func statusRank(status string) int {
	switch status {
	case models.TestStatusScheduled:
		return 0
	case models.TestStatusActive:
		return 1
	case models.TestStatusCompleted:
		return 2
	}
	return -1
}
