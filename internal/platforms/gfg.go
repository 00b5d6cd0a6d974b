package platforms

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

type GFGClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGFGClient() *GFGClient {
	return &GFGClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://geeks-for-geeks-api.vercel.app",
	}
}

type gfgResponse struct {
	Info struct {
		UserName            string `json:"userName"`
		TotalProblemsSolved int    `json:"totalProblemsSolved"`
		CodingScore         int    `json:"codingScore"`
		InstituteRank       int    `json:"instituteRank"`
	} `json:"info"`
	SolvedStats struct {
		Basic  gfgBucket `json:"basic"`
		School gfgBucket `json:"school"`
		Easy   gfgBucket `json:"easy"`
		Medium gfgBucket `json:"medium"`
		Hard   gfgBucket `json:"hard"`
	} `json:"solvedStats"`
}

type gfgBucket struct {
	Count int `json:"count"`
}

func (c *GFGClient) Fetch(identifier string) *PlatformProfile {
	profile, err := c.fetchLive(identifier)
	if err != nil {
		log.Printf("gfg: live fetch for %q failed, using fallback: %v", identifier, err)
		return SyntheticProfile(PlatformGFG, identifier)
	}
	return profile
}

func (c *GFGClient) fetchLive(identifier string) (*PlatformProfile, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/" + url.PathEscape(identifier))
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

	var parsed gfgResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if parsed.Info.UserName == "" {
		return nil, fmt.Errorf("user %q not found", identifier)
	}

	// School and basic problems fold into the easy bucket.
	easy := parsed.SolvedStats.Easy.Count + parsed.SolvedStats.Basic.Count + parsed.SolvedStats.School.Count
	profile := &PlatformProfile{
		Platform:    PlatformGFG,
		Identifier:  identifier,
		TotalSolved: parsed.Info.TotalProblemsSolved,
		Breakdown: DifficultyBreakdown{
			Easy:   easy,
			Medium: parsed.SolvedStats.Medium.Count,
			Hard:   parsed.SolvedStats.Hard.Count,
		},
		Ranking: parsed.Info.InstituteRank,
		Extra:   map[string]interface{}{"coding_score": parsed.Info.CodingScore},
	}

	return profile, nil
}
