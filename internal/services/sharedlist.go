package services

import (
	"strings"
	"time"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"gorm.io/gorm"
)

// SharedListService manages group-scoped collaborative question lists with
// per-user solved progress. It reuses the group service's membership checks.
type SharedListService struct {
	db     *gorm.DB
	groups *GroupService
}

func NewSharedListService(db *gorm.DB, groups *GroupService) *SharedListService {
	return &SharedListService{db: db, groups: groups}
}

func (s *SharedListService) Create(actorID, groupID uint, name, description string) (*models.SharedList, error) {
	if _, err := s.groups.getGroup(groupID); err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(groupID, actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("list name is required")
	}

	list := models.SharedList{
		GroupID:     groupID,
		Name:        name,
		Description: description,
		CreatedBy:   actorID,
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *SharedListService) ListByGroup(userID, groupID uint) ([]models.SharedList, error) {
	if _, err := s.groups.Membership(groupID, userID); err != nil {
		return nil, err
	}
	var lists []models.SharedList
	if err := s.db.Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

type SharedListDetail struct {
	List      models.SharedList           `json:"list"`
	Questions []models.SharedListQuestion `json:"questions"`
	Progress  []models.SharedListProgress `json:"progress"`
}

func (s *SharedListService) Get(userID, listID uint) (*SharedListDetail, error) {
	list, err := s.getList(listID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(list.GroupID, userID); err != nil {
		return nil, err
	}

	detail := &SharedListDetail{List: *list}
	s.db.Where("list_id = ?", listID).Order("created_at ASC").Find(&detail.Questions)
	for _, q := range detail.Questions {
		var progress []models.SharedListProgress
		s.db.Where("question_id = ?", q.ID).Find(&progress)
		detail.Progress = append(detail.Progress, progress...)
	}
	return detail, nil
}

func (s *SharedListService) Update(actorID, listID uint, name, description string) (*models.SharedList, error) {
	list, err := s.getList(listID)
	if err != nil {
		return nil, err
	}
	if err := s.groups.requireManager(list.GroupID, actorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) != "" {
		list.Name = name
	}
	list.Description = description
	if err := s.db.Save(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *SharedListService) Delete(actorID, listID uint) error {
	list, err := s.getList(listID)
	if err != nil {
		return err
	}
	if err := s.groups.requireManager(list.GroupID, actorID); err != nil {
		return err
	}

	var questions []models.SharedListQuestion
	s.db.Where("list_id = ?", listID).Find(&questions)
	for _, q := range questions {
		s.db.Where("question_id = ?", q.ID).Delete(&models.SharedListProgress{})
	}
	s.db.Where("list_id = ?", listID).Delete(&models.SharedListQuestion{})
	return s.db.Delete(list).Error
}

type SharedQuestionSpec struct {
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty"`
}

func (s *SharedListService) AddQuestion(actorID, listID uint, spec SharedQuestionSpec) (*models.SharedListQuestion, error) {
	list, err := s.getList(listID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(list.GroupID, actorID); err != nil {
		return nil, err
	}

	question := models.SharedListQuestion{
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

func (s *SharedListService) RemoveQuestion(actorID, questionID uint) error {
	var question models.SharedListQuestion
	if err := s.db.First(&question, questionID).Error; err != nil {
		return apperr.NotFound("question not found")
	}
	list, err := s.getList(question.ListID)
	if err != nil {
		return err
	}
	if err := s.groups.requireManager(list.GroupID, actorID); err != nil {
		return err
	}

	s.db.Where("question_id = ?", questionID).Delete(&models.SharedListProgress{})
	return s.db.Delete(&question).Error
}

// SetProgress upserts the caller's solved flag for one question.
func (s *SharedListService) SetProgress(userID, questionID uint, solved bool) (*models.SharedListProgress, error) {
	var question models.SharedListQuestion
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, apperr.NotFound("question not found")
	}
	list, err := s.getList(question.ListID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Membership(list.GroupID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	var progress models.SharedListProgress
	if err := s.db.Where("question_id = ? AND user_id = ?", questionID, userID).
		First(&progress).Error; err == nil {
		progress.Solved = solved
		if solved {
			progress.SolvedAt = &now
		} else {
			progress.SolvedAt = nil
		}
		if err := s.db.Save(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}

	progress = models.SharedListProgress{
		QuestionID: questionID,
		UserID:     userID,
		Solved:     solved,
	}
	if solved {
		progress.SolvedAt = &now
	}
	if err := s.db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *SharedListService) getList(listID uint) (*models.SharedList, error) {
	var list models.SharedList
	if err := s.db.First(&list, listID).Error; err != nil {
		return nil, apperr.NotFound("shared list not found")
	}
	return &list, nil
}
