package platforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticProfileIsDeterministic(t *testing.T) {
	a := SyntheticProfile(PlatformLeetcode, "some_user")
	b := SyntheticProfile(PlatformLeetcode, "some_user")
	assert.Equal(t, a, b)

	other := SyntheticProfile(PlatformCodeforces, "some_user")
	assert.NotEqual(t, a.TotalSolved, 0)
	assert.Equal(t, PlatformCodeforces, other.Platform)
}

func TestSyntheticProfileBounds(t *testing.T) {
	identifiers := []string{"a", "bb", "ccc", "tourist", "jiangly", "neal_wu"}

	for _, id := range identifiers {
		p := SyntheticProfile(PlatformLeetcode, id)
		assert.Equal(t, p.TotalSolved, p.Breakdown.Easy+p.Breakdown.Medium+p.Breakdown.Hard)
		assert.GreaterOrEqual(t, p.Breakdown.Easy, 20)
		assert.GreaterOrEqual(t, p.Ranking, 5000)

		cf := SyntheticProfile(PlatformCodeforces, id)
		assert.GreaterOrEqual(t, cf.Rating, 800)
		assert.Less(t, cf.Rating, 2100)
		require.Contains(t, cf.Extra, "rank")

		gfg := SyntheticProfile(PlatformGFG, id)
		require.Contains(t, gfg.Extra, "coding_score")
		score := gfg.Extra["coding_score"].(int)
		assert.GreaterOrEqual(t, score, 50)
	}
}

func TestDemoAccountsAreFixed(t *testing.T) {
	lc := SyntheticProfile(PlatformLeetcode, "demo_lc")
	assert.Equal(t, 250, lc.TotalSolved)
	assert.Equal(t, 120, lc.Breakdown.Easy)

	cf := SyntheticProfile(PlatformCodeforces, "demo_cf")
	assert.Equal(t, 1540, cf.Rating)
	assert.Equal(t, "specialist", cf.Extra["rank"])

	gfg := SyntheticProfile(PlatformGFG, "demo_gfg")
	assert.Equal(t, 140, gfg.TotalSolved)
}

func TestDemoProfileReturnsCopy(t *testing.T) {
	first := SyntheticProfile(PlatformLeetcode, "demo_lc")
	first.TotalSolved = 0

	second := SyntheticProfile(PlatformLeetcode, "demo_lc")
	assert.Equal(t, 250, second.TotalSolved)
}

func TestRatingRankBuckets(t *testing.T) {
	assert.Equal(t, "newbie", ratingRank(800))
	assert.Equal(t, "pupil", ratingRank(1200))
	assert.Equal(t, "specialist", ratingRank(1599))
	assert.Equal(t, "expert", ratingRank(1800))
	assert.Equal(t, "candidate master", ratingRank(1900))
}
