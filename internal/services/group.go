package services

import (
	"strings"
	"time"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// CreateGroup inserts the group and its owner membership together; the creator
// is always the sole initial owner.
func (s *GroupService) CreateGroup(ownerID uint, name, description string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("group name is required")
	}

	group := models.Group{
		Name:        name,
		Description: description,
		CreatedBy:   ownerID,
		InviteCode:  s.generateUniqueInviteCode(),
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}

	member := models.GroupMember{
		GroupID:  group.ID,
		UserID:   ownerID,
		Role:     models.RoleOwner,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (s *GroupService) ListGroups(userID uint) ([]models.Group, error) {
	var memberships []models.GroupMember
	if err := s.db.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}

	groups := make([]models.Group, 0, len(memberships))
	for _, m := range memberships {
		var group models.Group
		if err := s.db.First(&group, m.GroupID).Error; err != nil {
			continue
		}
		groups = append(groups, group)
	}
	return groups, nil
}

type GroupDetail struct {
	Group        models.Group         `json:"group"`
	Members      []models.GroupMember `json:"members"`
	SharedLists  []models.SharedList  `json:"shared_lists"`
	PrivateTests []models.PrivateTest `json:"private_tests"`
}

func (s *GroupService) GetGroup(userID, groupID uint) (*GroupDetail, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Membership(groupID, userID); err != nil {
		return nil, err
	}

	detail := &GroupDetail{Group: *group}
	s.db.Where("group_id = ?", groupID).Order("joined_at ASC").Find(&detail.Members)
	s.db.Where("group_id = ?", groupID).Order("created_at DESC").Find(&detail.SharedLists)
	s.db.Where("group_id = ?", groupID).Order("start_time ASC").Find(&detail.PrivateTests)
	return detail, nil
}

func (s *GroupService) UpdateGroup(actorID, groupID uint, name, description string) (*models.Group, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(groupID, actorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) != "" {
		group.Name = name
	}
	group.Description = description
	if err := s.db.Save(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) JoinByInviteCode(userID uint, code string) (*models.Group, error) {
	var group models.Group
	if err := s.db.Where("invite_code = ?", code).First(&group).Error; err != nil {
		return nil, apperr.NotFound("invalid invite code")
	}

	var existing models.GroupMember
	if err := s.db.Where("group_id = ? AND user_id = ?", group.ID, userID).
		First(&existing).Error; err == nil {
		return nil, apperr.Invariant("already a member of this group")
	}

	member := models.GroupMember{
		GroupID:  group.ID,
		UserID:   userID,
		Role:     models.RoleMember,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// AddMember lets an admin/owner add a user directly, bypassing the invite code.
func (s *GroupService) AddMember(actorID, groupID, targetUserID uint) (*models.GroupMember, error) {
	if _, err := s.getGroup(groupID); err != nil {
		return nil, err
	}
	if err := s.requireManager(groupID, actorID); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, targetUserID).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}

	var existing models.GroupMember
	if err := s.db.Where("group_id = ? AND user_id = ?", groupID, targetUserID).
		First(&existing).Error; err == nil {
		return nil, apperr.Invariant("user is already a member")
	}

	member := models.GroupMember{
		GroupID:  groupID,
		UserID:   targetUserID,
		Role:     models.RoleMember,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *GroupService) SetRole(actorID, groupID, targetUserID uint, role models.Role) (*models.GroupMember, error) {
	if !role.Valid() {
		return nil, apperr.Validation("invalid role %q", role)
	}

	actor, err := s.Membership(groupID, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.CanManageMembers() {
		return nil, apperr.Forbidden("only admins or owners can change roles")
	}

	target, err := s.Membership(groupID, targetUserID)
	if err != nil {
		return nil, err
	}

	// Touching an owner, or minting a new one, is owner-only.
	if (target.Role == models.RoleOwner || role == models.RoleOwner) && actor.Role != models.RoleOwner {
		return nil, apperr.Forbidden("only an owner can modify owner roles")
	}

	if target.Role == models.RoleOwner && role != models.RoleOwner {
		if s.ownerCount(groupID) <= 1 {
			return nil, apperr.Invariant("cannot demote the last owner")
		}
	}

	target.Role = role
	if err := s.db.Save(target).Error; err != nil {
		return nil, err
	}
	return target, nil
}

func (s *GroupService) RemoveMember(actorID, groupID, targetUserID uint) error {
	actor, err := s.Membership(groupID, actorID)
	if err != nil {
		return err
	}
	target, err := s.Membership(groupID, targetUserID)
	if err != nil {
		return err
	}

	if actorID != targetUserID {
		if !actor.Role.CanManageMembers() {
			return apperr.Forbidden("only admins or owners can remove members")
		}
		if target.Role == models.RoleOwner && actor.Role != models.RoleOwner {
			return apperr.Forbidden("only an owner can remove an owner")
		}
	}

	if target.Role == models.RoleOwner && s.ownerCount(groupID) <= 1 {
		return apperr.Invariant("cannot remove the last owner")
	}

	return s.db.Delete(target).Error
}

// DeleteGroup cascades through every group-owned entity before dropping the
// group itself. The deletes run as sequential application-level loops: with the
// current store they behave atomically, but a networked backend could observe a
// partial cascade.
func (s *GroupService) DeleteGroup(actorID, groupID uint) error {
	if _, err := s.getGroup(groupID); err != nil {
		return err
	}

	actor, err := s.Membership(groupID, actorID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleOwner {
		return apperr.Forbidden("only an owner can delete the group")
	}

	var lists []models.SharedList
	s.db.Where("group_id = ?", groupID).Find(&lists)
	for _, list := range lists {
		var questions []models.SharedListQuestion
		s.db.Where("list_id = ?", list.ID).Find(&questions)
		for _, q := range questions {
			s.db.Where("question_id = ?", q.ID).Delete(&models.SharedListProgress{})
		}
		s.db.Where("list_id = ?", list.ID).Delete(&models.SharedListQuestion{})
		s.db.Delete(&list)
	}

	var tests []models.PrivateTest
	s.db.Where("group_id = ?", groupID).Find(&tests)
	for _, test := range tests {
		s.db.Where("test_id = ?", test.ID).Delete(&models.TestSubmission{})
		s.db.Where("test_id = ?", test.ID).Delete(&models.TestParticipant{})
		s.db.Where("test_id = ?", test.ID).Delete(&models.TestQuestion{})
		s.db.Delete(&test)
	}

	s.db.Where("group_id = ?", groupID).Delete(&models.GroupMember{})
	return s.db.Delete(&models.Group{}, groupID).Error
}

// Membership returns the caller's membership row or a forbidden error; it is
// the authorization primitive the test and shared-list services reuse.
func (s *GroupService) Membership(groupID, userID uint) (*models.GroupMember, error) {
	var member models.GroupMember
	if err := s.db.Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error; err != nil {
		return nil, apperr.Forbidden("not a member of this group")
	}
	return &member, nil
}

func (s *GroupService) requireManager(groupID, userID uint) error {
	member, err := s.Membership(groupID, userID)
	if err != nil {
		return err
	}
	if !member.Role.CanManageMembers() {
		return apperr.Forbidden("admin or owner role required")
	}
	return nil
}

func (s *GroupService) getGroup(groupID uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		return nil, apperr.NotFound("group not found")
	}
	return &group, nil
}

func (s *GroupService) ownerCount(groupID uint) int64 {
	var count int64
	s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND role = ?", groupID, models.RoleOwner).
		Count(&count)
	return count
}

func (s *GroupService) generateUniqueInviteCode() string {
	for {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		var count int64
		s.db.Model(&models.Group{}).Where("invite_code = ?", code).Count(&count)
		if count == 0 {
			return code
		}
	}
}
