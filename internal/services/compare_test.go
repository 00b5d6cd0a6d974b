package services

import (
	"testing"

	"codetrack-backend/internal/apperr"
	"codetrack-backend/internal/models"
	"codetrack-backend/internal/platforms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	platform string
}

func (f *stubFetcher) Fetch(identifier string) *platforms.PlatformProfile {
	return &platforms.PlatformProfile{
		Platform:    f.platform,
		Identifier:  identifier,
		TotalSolved: 42,
	}
}

func newCompare(t *testing.T) *CompareService {
	t.Helper()
	db := newTestDB(t)
	return NewCompareService(db,
		&stubFetcher{platform: platforms.PlatformLeetcode},
		&stubFetcher{platform: platforms.PlatformCodeforces},
		&stubFetcher{platform: platforms.PlatformGFG},
	)
}

func TestCompareRequiresAnIdentifier(t *testing.T) {
	compare := newCompare(t)

	_, err := compare.Compare(0, CompareRequest{})
	assert.True(t, apperr.IsValidation(err))
}

func TestCompareBundleKeyPriority(t *testing.T) {
	compare := newCompare(t)

	bundle, err := compare.Compare(0, CompareRequest{
		LeetcodeUsername: "lc_user",
		CodeforcesHandle: "cf_user",
	})
	require.NoError(t, err)
	assert.Equal(t, "lc_user", bundle.Key)
	require.NotNil(t, bundle.Leetcode)
	require.NotNil(t, bundle.Codeforces)
	assert.Nil(t, bundle.GFG, "omitted platform stays out of the bundle")

	bundle, err = compare.Compare(0, CompareRequest{GFGUsername: "gfg_user"})
	require.NoError(t, err)
	assert.Equal(t, "gfg_user", bundle.Key)
	assert.Nil(t, bundle.Leetcode)
	require.NotNil(t, bundle.GFG)
	assert.Equal(t, 42, bundle.GFG.TotalSolved)
}

func TestFetchUnknownPlatform(t *testing.T) {
	compare := newCompare(t)

	_, err := compare.Fetch(0, "hackerrank", "someone")
	assert.True(t, apperr.IsValidation(err))

	_, err = compare.Fetch(0, platforms.PlatformLeetcode, "")
	assert.True(t, apperr.IsValidation(err))

	profile, err := compare.Fetch(0, platforms.PlatformLeetcode, "someone")
	require.NoError(t, err)
	assert.Equal(t, "someone", profile.Identifier)
}

func TestSearchHistoryDedup(t *testing.T) {
	compare := newCompare(t)
	user := createUser(t, compare.db, "erin")

	_, err := compare.Fetch(user.ID, platforms.PlatformLeetcode, "tourist")
	require.NoError(t, err)
	_, err = compare.Fetch(user.ID, platforms.PlatformLeetcode, "tourist")
	require.NoError(t, err)
	_, err = compare.Fetch(user.ID, platforms.PlatformCodeforces, "tourist")
	require.NoError(t, err)

	history, err := compare.History(user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2, "same platform+identifier refreshes, not appends")
}

func TestAnonymousLookupsLeaveNoHistory(t *testing.T) {
	compare := newCompare(t)

	_, err := compare.Fetch(0, platforms.PlatformGFG, "ghost")
	require.NoError(t, err)

	var count int64
	compare.db.Model(&models.SearchHistory{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteHistoryScopedToOwner(t *testing.T) {
	compare := newCompare(t)
	erin := createUser(t, compare.db, "erin")
	frank := createUser(t, compare.db, "frank")

	_, err := compare.Fetch(erin.ID, platforms.PlatformLeetcode, "tourist")
	require.NoError(t, err)
	history, err := compare.History(erin.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	err = compare.DeleteHistory(frank.ID, history[0].ID)
	assert.True(t, apperr.IsNotFound(err), "another user's entry looks absent")

	require.NoError(t, compare.DeleteHistory(erin.ID, history[0].ID))
	history, err = compare.History(erin.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
