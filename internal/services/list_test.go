package services

import (
	"testing"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalListVisibility(t *testing.T) {
	db := newTestDB(t)
	lists := NewListService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	private, err := lists.Create(alice.ID, "private prep", "", false)
	require.NoError(t, err)
	public, err := lists.Create(alice.ID, "public prep", "", true)
	require.NoError(t, err)

	_, err = lists.Get(bob.ID, private.ID)
	assert.True(t, apperr.IsForbidden(err))

	got, err := lists.Get(bob.ID, public.ID)
	require.NoError(t, err)
	assert.Equal(t, "public prep", got.Name)

	// bob sees only the public one; alice sees both
	visible, err := lists.List(bob.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	visible, err = lists.List(alice.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestPersonalListOwnerOnlyWrites(t *testing.T) {
	db := newTestDB(t)
	lists := NewListService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	list, err := lists.Create(alice.ID, "prep", "", true)
	require.NoError(t, err)

	_, err = lists.AddQuestion(bob.ID, list.ID, ListQuestionSpec{Title: "Two Sum"})
	assert.True(t, apperr.IsForbidden(err))
	_, err = lists.Update(bob.ID, list.ID, "stolen", "", false)
	assert.True(t, apperr.IsForbidden(err))
	err = lists.Delete(bob.ID, list.ID)
	assert.True(t, apperr.IsForbidden(err))

	question, err := lists.AddQuestion(alice.ID, list.ID, ListQuestionSpec{Title: "Two Sum"})
	require.NoError(t, err)

	_, err = lists.SetSolved(bob.ID, question.ID, true)
	assert.True(t, apperr.IsForbidden(err))

	updated, err := lists.SetSolved(alice.ID, question.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Solved)
}

func TestPersonalListDeleteRemovesQuestions(t *testing.T) {
	db := newTestDB(t)
	lists := NewListService(db)
	alice := createUser(t, db, "alice")

	list, err := lists.Create(alice.ID, "prep", "", false)
	require.NoError(t, err)
	_, err = lists.AddQuestion(alice.ID, list.ID, ListQuestionSpec{Title: "Two Sum"})
	require.NoError(t, err)

	require.NoError(t, lists.Delete(alice.ID, list.ID))

	var count int64
	db.Model(&models.ListQuestion{}).Count(&count)
	assert.Zero(t, count)

	_, err = lists.Get(alice.ID, list.ID)
	assert.True(t, apperr.IsNotFound(err))
}
