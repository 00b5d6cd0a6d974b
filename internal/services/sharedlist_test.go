package services

import (
	"testing"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSharedList(t *testing.T) (*SharedListService, *GroupService, *models.Group, *models.User, *models.User) {
	t.Helper()

	db := newTestDB(t)
	groups := NewGroupService(db)
	lists := NewSharedListService(db, groups)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")

	group, err := groups.CreateGroup(owner.ID, "study group", "")
	require.NoError(t, err)
	_, err = groups.JoinByInviteCode(member.ID, group.InviteCode)
	require.NoError(t, err)

	return lists, groups, group, owner, member
}

func TestSharedListMembersOnly(t *testing.T) {
	lists, _, group, owner, _ := setupSharedList(t)
	outsider := createUser(t, lists.db, "outsider")

	_, err := lists.Create(outsider.ID, group.ID, "graphs", "")
	assert.True(t, apperr.IsForbidden(err))

	list, err := lists.Create(owner.ID, group.ID, "graphs", "bfs and dfs")
	require.NoError(t, err)

	_, err = lists.Get(outsider.ID, list.ID)
	assert.True(t, apperr.IsForbidden(err))

	_, err = lists.ListByGroup(outsider.ID, group.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestSharedListAnyMemberAddsQuestions(t *testing.T) {
	lists, _, group, owner, member := setupSharedList(t)

	list, err := lists.Create(owner.ID, group.ID, "graphs", "")
	require.NoError(t, err)

	_, err = lists.AddQuestion(member.ID, list.ID, SharedQuestionSpec{Title: "Course Schedule"})
	require.NoError(t, err)

	detail, err := lists.Get(member.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, detail.Questions, 1)

	// only managers remove questions
	err = lists.RemoveQuestion(member.ID, detail.Questions[0].ID)
	assert.True(t, apperr.IsForbidden(err))
	require.NoError(t, lists.RemoveQuestion(owner.ID, detail.Questions[0].ID))
}

func TestSharedListProgressPerUser(t *testing.T) {
	lists, _, group, owner, member := setupSharedList(t)

	list, err := lists.Create(owner.ID, group.ID, "graphs", "")
	require.NoError(t, err)
	question, err := lists.AddQuestion(owner.ID, list.ID, SharedQuestionSpec{Title: "Course Schedule"})
	require.NoError(t, err)

	progress, err := lists.SetProgress(member.ID, question.ID, true)
	require.NoError(t, err)
	assert.True(t, progress.Solved)
	require.NotNil(t, progress.SolvedAt)

	// the upsert flips the same row instead of adding one
	progress, err = lists.SetProgress(member.ID, question.ID, false)
	require.NoError(t, err)
	assert.False(t, progress.Solved)
	assert.Nil(t, progress.SolvedAt)

	_, err = lists.SetProgress(owner.ID, question.ID, true)
	require.NoError(t, err)

	var count int64
	lists.db.Model(&models.SharedListProgress{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestSharedListDeleteCleansUp(t *testing.T) {
	lists, _, group, owner, member := setupSharedList(t)

	list, err := lists.Create(owner.ID, group.ID, "graphs", "")
	require.NoError(t, err)
	question, err := lists.AddQuestion(owner.ID, list.ID, SharedQuestionSpec{Title: "Course Schedule"})
	require.NoError(t, err)
	_, err = lists.SetProgress(member.ID, question.ID, true)
	require.NoError(t, err)

	err = lists.Delete(member.ID, list.ID)
	assert.True(t, apperr.IsForbidden(err))

	require.NoError(t, lists.Delete(owner.ID, list.ID))

	var questions, progress int64
	lists.db.Model(&models.SharedListQuestion{}).Count(&questions)
	lists.db.Model(&models.SharedListProgress{}).Count(&progress)
	assert.Zero(t, questions)
	assert.Zero(t, progress)
}
