package services

import (
	"strings"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"gorm.io/gorm"
)

// ListService covers personal question lists: owner-private by default,
// optionally public for read access.
type ListService struct {
	db *gorm.DB
}

func NewListService(db *gorm.DB) *ListService {
	return &ListService{db: db}
}

func (s *ListService) Create(ownerID uint, name, description string, public bool) (*models.QuestionList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("list name is required")
	}

	list := models.QuestionList{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Public:      public,
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// List returns the caller's lists plus everyone's public ones.
func (s *ListService) List(userID uint) ([]models.QuestionList, error) {
	var lists []models.QuestionList
	if err := s.db.Where("owner_id = ? OR public = ?", userID, true).
		Order("created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *ListService) Get(userID, listID uint) (*models.QuestionList, error) {
	var list models.QuestionList
	if err := s.db.Preload("Questions").First(&list, listID).Error; err != nil {
		return nil, apperr.NotFound("list not found")
	}
	if list.OwnerID != userID && !list.Public {
		return nil, apperr.Forbidden("list is private")
	}
	return &list, nil
}

func (s *ListService) Update(userID, listID uint, name, description string, public bool) (*models.QuestionList, error) {
	list, err := s.owned(userID, listID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) != "" {
		list.Name = name
	}
	list.Description = description
	list.Public = public
	if err := s.db.Save(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ListService) Delete(userID, listID uint) error {
	list, err := s.owned(userID, listID)
	if err != nil {
		return err
	}

	s.db.Where("list_id = ?", listID).Delete(&models.ListQuestion{})
	return s.db.Delete(list).Error
}

type ListQuestionSpec struct {
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty"`
}

func (s *ListService) AddQuestion(userID, listID uint, spec ListQuestionSpec) (*models.ListQuestion, error) {
	if _, err := s.owned(userID, listID); err != nil {
		return nil, err
	}

	question := models.ListQuestion{
		ListID:     listID,
		Title:      spec.Title,
		URL:        spec.URL,
		Platform:   spec.Platform,
		Difficulty: spec.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *ListService) SetSolved(userID, questionID uint, solved bool) (*models.ListQuestion, error) {
	var question models.ListQuestion
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, apperr.NotFound("question not found")
	}
	if _, err := s.owned(userID, question.ListID); err != nil {
		return nil, err
	}

	question.Solved = solved
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *ListService) RemoveQuestion(userID, questionID uint) error {
	var question models.ListQuestion
	if err := s.db.First(&question, questionID).Error; err != nil {
		return apperr.NotFound("question not found")
	}
	if _, err := s.owned(userID, question.ListID); err != nil {
		return err
	}
	return s.db.Delete(&question).Error
}

func (s *ListService) owned(userID, listID uint) (*models.QuestionList, error) {
	var list models.QuestionList
	if err := s.db.First(&list, listID).Error; err != nil {
		return nil, apperr.NotFound("list not found")
	}
	if list.OwnerID != userID {
		return nil, apperr.Forbidden("not the list owner")
	}
	return &list, nil
}
