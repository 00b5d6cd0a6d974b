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

type CodeforcesClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewCodeforcesClient() *CodeforcesClient {
	return &CodeforcesClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://codeforces.com/api",
	}
}

type cfUserInfoResponse struct {
	Status string `json:"status"`
	Result []struct {
		Handle string `json:"handle"`
		Rating int    `json:"rating"`
		Rank   string `json:"rank"`
	} `json:"result"`
}

type cfStatusResponse struct {
	Status string `json:"status"`
	Result []struct {
		Verdict string `json:"verdict"`
		Problem struct {
			ContestID int    `json:"contestId"`
			Index     string `json:"index"`
			Rating    int    `json:"rating"`
		} `json:"problem"`
	} `json:"result"`
}

func (c *CodeforcesClient) Fetch(identifier string) *PlatformProfile {
	profile, err := c.fetchLive(identifier)
	if err != nil {
		log.Printf("codeforces: live fetch for %q failed, using fallback: %v", identifier, err)
		return SyntheticProfile(PlatformCodeforces, identifier)
	}
	return profile
}

func (c *CodeforcesClient) fetchLive(identifier string) (*PlatformProfile, error) {
	var info cfUserInfoResponse
	if err := c.get("/user.info?handles="+url.QueryEscape(identifier), &info); err != nil {
		return nil, err
	}
	if info.Status != "OK" || len(info.Result) == 0 {
		return nil, fmt.Errorf("handle %q not found", identifier)
	}

	profile := &PlatformProfile{
		Platform:   PlatformCodeforces,
		Identifier: identifier,
		Rating:     info.Result[0].Rating,
		Extra:      map[string]interface{}{"rank": info.Result[0].Rank},
	}

	var status cfStatusResponse
	if err := c.get("/user.status?handle="+url.QueryEscape(identifier)+"&from=1&count=2000", &status); err != nil {
		return nil, err
	}
	if status.Status != "OK" {
		return nil, fmt.Errorf("user.status failed for %q", identifier)
	}

	// Count each problem once even if accepted multiple times; bucket by the
	// problem's difficulty rating.
	solved := make(map[string]int)
	for _, sub := range status.Result {
		if sub.Verdict != "OK" {
			continue
		}
		key := fmt.Sprintf("%d%s", sub.Problem.ContestID, sub.Problem.Index)
		if _, seen := solved[key]; !seen {
			solved[key] = sub.Problem.Rating
		}
	}
	for _, rating := range solved {
		switch {
		case rating > 0 && rating < 1200:
			profile.Breakdown.Easy++
		case rating < 1800:
			profile.Breakdown.Medium++
		default:
			profile.Breakdown.Hard++
		}
	}
	profile.TotalSolved = len(solved)

	return profile, nil
}

func (c *CodeforcesClient) get(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}
