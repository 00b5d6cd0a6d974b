package platforms

import (
	"hash/fnv"
	"math/rand"
)

// Fixed profiles for the demo accounts so the seeded users always show the same
// numbers regardless of network state.
var demoProfiles = map[string]PlatformProfile{
	PlatformLeetcode + ":demo_lc": {
		Platform:    PlatformLeetcode,
		Identifier:  "demo_lc",
		TotalSolved: 250,
		Breakdown:   DifficultyBreakdown{Easy: 120, Medium: 100, Hard: 30},
		Ranking:     45231,
	},
	PlatformCodeforces + ":demo_cf": {
		Platform:    PlatformCodeforces,
		Identifier:  "demo_cf",
		TotalSolved: 180,
		Breakdown:   DifficultyBreakdown{Easy: 90, Medium: 70, Hard: 20},
		Rating:      1540,
		Extra:       map[string]interface{}{"rank": "specialist"},
	},
	PlatformGFG + ":demo_gfg": {
		Platform:    PlatformGFG,
		Identifier:  "demo_gfg",
		TotalSolved: 140,
		Breakdown:   DifficultyBreakdown{Easy: 80, Medium: 45, Hard: 15},
		Extra:       map[string]interface{}{"coding_score": 420},
	},
}

// SyntheticProfile builds the degraded-mode profile for an identifier. The rand
// source is seeded from the platform+identifier pair, so repeated calls for the
// same user produce identical data without touching the network.
func SyntheticProfile(platform, identifier string) *PlatformProfile {
	if p, ok := demoProfiles[platform+":"+identifier]; ok {
		cp := p
		return &cp
	}

	h := fnv.New64a()
	h.Write([]byte(platform + ":" + identifier))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	profile := &PlatformProfile{
		Platform:   platform,
		Identifier: identifier,
	}

	switch platform {
	case PlatformLeetcode:
		easy := 20 + rng.Intn(200)
		medium := 10 + rng.Intn(150)
		hard := rng.Intn(60)
		profile.Breakdown = DifficultyBreakdown{Easy: easy, Medium: medium, Hard: hard}
		profile.TotalSolved = easy + medium + hard
		profile.Ranking = 5000 + rng.Intn(495000)
	case PlatformCodeforces:
		easy := 15 + rng.Intn(150)
		medium := 10 + rng.Intn(120)
		hard := rng.Intn(50)
		profile.Breakdown = DifficultyBreakdown{Easy: easy, Medium: medium, Hard: hard}
		profile.TotalSolved = easy + medium + hard
		profile.Rating = 800 + rng.Intn(1300)
		profile.Extra = map[string]interface{}{"rank": ratingRank(profile.Rating)}
	case PlatformGFG:
		easy := 15 + rng.Intn(150)
		medium := 10 + rng.Intn(100)
		hard := rng.Intn(40)
		profile.Breakdown = DifficultyBreakdown{Easy: easy, Medium: medium, Hard: hard}
		profile.TotalSolved = easy + medium + hard
		profile.Extra = map[string]interface{}{"coding_score": 50 + rng.Intn(700)}
	default:
		profile.TotalSolved = 10 + rng.Intn(100)
	}

	return profile
}

func ratingRank(rating int) string {
	switch {
	case rating < 1200:
		return "newbie"
	case rating < 1400:
		return "pupil"
	case rating < 1600:
		return "specialist"
	case rating < 1900:
		return "expert"
	default:
		return "candidate master"
	}
}
