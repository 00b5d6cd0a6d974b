package services

import (
	"testing"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroupMakesCreatorOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")

	group, err := svc.CreateGroup(alice.ID, "algo club", "weekly practice")
	require.NoError(t, err)
	assert.NotEmpty(t, group.InviteCode)

	var members []models.GroupMember
	require.NoError(t, db.Where("group_id = ?", group.ID).Find(&members).Error)
	require.Len(t, members, 1)
	assert.Equal(t, alice.ID, members[0].UserID)
	assert.Equal(t, models.RoleOwner, members[0].Role)
}

func TestCreateGroupRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")

	_, err := svc.CreateGroup(alice.ID, "  ", "")
	assert.True(t, apperr.IsValidation(err))
}

func TestJoinByInviteCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	group, err := svc.CreateGroup(alice.ID, "algo club", "")
	require.NoError(t, err)

	joined, err := svc.JoinByInviteCode(bob.ID, group.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, group.ID, joined.ID)

	member, err := svc.Membership(group.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, member.Role)

	// second redemption is rejected
	_, err = svc.JoinByInviteCode(bob.ID, group.InviteCode)
	assert.True(t, apperr.IsInvariant(err))

	_, err = svc.JoinByInviteCode(bob.ID, "NOPE1234")
	assert.True(t, apperr.IsNotFound(err))
}

func TestSetRoleGating(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	group, err := svc.CreateGroup(alice.ID, "algo club", "")
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(bob.ID, group.InviteCode)
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(carol.ID, group.InviteCode)
	require.NoError(t, err)

	// plain member cannot change roles
	_, err = svc.SetRole(bob.ID, group.ID, carol.ID, models.RoleAdmin)
	assert.True(t, apperr.IsForbidden(err))

	// owner promotes bob to admin
	member, err := svc.SetRole(alice.ID, group.ID, bob.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, member.Role)

	// admin can manage members but not mint owners
	_, err = svc.SetRole(bob.ID, group.ID, carol.ID, models.RoleOwner)
	assert.True(t, apperr.IsForbidden(err))

	// admin cannot demote an owner either
	_, err = svc.SetRole(bob.ID, group.ID, alice.ID, models.RoleMember)
	assert.True(t, apperr.IsForbidden(err))

	_, err = svc.SetRole(alice.ID, group.ID, carol.ID, "superuser")
	assert.True(t, apperr.IsValidation(err))
}

func TestLastOwnerProtected(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	group, err := svc.CreateGroup(alice.ID, "algo club", "")
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(bob.ID, group.InviteCode)
	require.NoError(t, err)

	_, err = svc.SetRole(alice.ID, group.ID, alice.ID, models.RoleMember)
	assert.True(t, apperr.IsInvariant(err))

	err = svc.RemoveMember(alice.ID, group.ID, alice.ID)
	assert.True(t, apperr.IsInvariant(err))

	// with a second owner, the original can step down
	_, err = svc.SetRole(alice.ID, group.ID, bob.ID, models.RoleOwner)
	require.NoError(t, err)
	_, err = svc.SetRole(alice.ID, group.ID, alice.ID, models.RoleMember)
	require.NoError(t, err)
}

func TestMemberCanRemoveSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	group, err := svc.CreateGroup(alice.ID, "algo club", "")
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(bob.ID, group.InviteCode)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(bob.ID, group.ID, bob.ID))

	_, err = svc.Membership(group.ID, bob.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestMemberCannotRemoveOthers(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	group, err := svc.CreateGroup(alice.ID, "algo club", "")
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(bob.ID, group.InviteCode)
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(carol.ID, group.InviteCode)
	require.NoError(t, err)

	err = svc.RemoveMember(bob.ID, group.ID, carol.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestDeleteGroupCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	lists := NewSharedListService(db, svc)
	tests := NewTestService(db, svc, NewScoringService(), false)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	group, err := svc.CreateGroup(alice.ID, "algo club", "")
	require.NoError(t, err)
	_, err = svc.JoinByInviteCode(bob.ID, group.InviteCode)
	require.NoError(t, err)

	list, err := lists.Create(alice.ID, group.ID, "graph problems", "")
	require.NoError(t, err)
	question, err := lists.AddQuestion(alice.ID, list.ID, SharedQuestionSpec{Title: "Dijkstra"})
	require.NoError(t, err)
	_, err = lists.SetProgress(bob.ID, question.ID, true)
	require.NoError(t, err)

	test, err := tests.CreateTest(alice.ID, group.ID, TestSpec{
		Name: "weekly", StartTime: "2026-09-01T10:00:00Z", DurationMinutes: 30, NumQuestions: 1,
	})
	require.NoError(t, err)
	qs, err := tests.AddQuestions(alice.ID, test.ID, []QuestionSpec{{QuestionID: "two-sum", Title: "Two Sum"}})
	require.NoError(t, err)
	_, err = tests.Join(bob.ID, test.ID)
	require.NoError(t, err)
	_, err = tests.Submit(bob.ID, test.ID, qs[0].ID, true)
	require.NoError(t, err)

	// a plain member cannot delete
	err = svc.DeleteGroup(bob.ID, group.ID)
	assert.True(t, apperr.IsForbidden(err))

	require.NoError(t, svc.DeleteGroup(alice.ID, group.ID))

	for _, model := range []interface{}{
		&models.Group{}, &models.GroupMember{},
		&models.SharedList{}, &models.SharedListQuestion{}, &models.SharedListProgress{},
		&models.PrivateTest{}, &models.TestQuestion{}, &models.TestParticipant{}, &models.TestSubmission{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T should be empty after cascade", model)
	}
}

func TestInviteCodesUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	alice := createUser(t, db, "alice")

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		group, err := svc.CreateGroup(alice.ID, "club", "")
		require.NoError(t, err)
		assert.False(t, seen[group.InviteCode])
		seen[group.InviteCode] = true
	}
}
