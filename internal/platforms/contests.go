package platforms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContestCandidate is a contest as reported by an external source. StartTime
// stays a raw RFC3339 string until ingestion, which drops candidates it cannot
// parse.
type ContestCandidate struct {
	Name            string `json:"name"`
	Platform        string `json:"platform"`
	URL             string `json:"url"`
	StartTime       string `json:"start_time"`
	DurationSeconds int    `json:"duration_seconds"`
}

// ContestSource lists upcoming contests from one platform.
type ContestSource interface {
	Upcoming() ([]ContestCandidate, error)
}

type CodeforcesContestSource struct {
	httpClient *http.Client
	baseURL    string
}

func NewCodeforcesContestSource() *CodeforcesContestSource {
	return &CodeforcesContestSource{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://codeforces.com/api",
	}
}

type cfContestListResponse struct {
	Status string `json:"status"`
	Result []struct {
		ID               int    `json:"id"`
		Name             string `json:"name"`
		Phase            string `json:"phase"`
		DurationSeconds  int    `json:"durationSeconds"`
		StartTimeSeconds int64  `json:"startTimeSeconds"`
	} `json:"result"`
}

func (s *CodeforcesContestSource) Upcoming() ([]ContestCandidate, error) {
	resp, err := s.httpClient.Get(s.baseURL + "/contest.list?gym=false")
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var parsed cfContestListResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if parsed.Status != "OK" {
		return nil, fmt.Errorf("contest.list failed")
	}

	var candidates []ContestCandidate
	for _, c := range parsed.Result {
		if c.Phase != "BEFORE" {
			continue
		}
		candidates = append(candidates, ContestCandidate{
			Name:            c.Name,
			Platform:        PlatformCodeforces,
			URL:             fmt.Sprintf("https://codeforces.com/contest/%d", c.ID),
			StartTime:       time.Unix(c.StartTimeSeconds, 0).UTC().Format(time.RFC3339),
			DurationSeconds: c.DurationSeconds,
		})
	}
	return candidates, nil
}

type LeetcodeContestSource struct {
	httpClient *http.Client
	baseURL    string
}

func NewLeetcodeContestSource() *LeetcodeContestSource {
	return &LeetcodeContestSource{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://leetcode.com/graphql",
	}
}

const leetcodeContestQuery = `{
  upcomingContests {
    title
    titleSlug
    startTime
    duration
  }
}`

type leetcodeContestResponse struct {
	Data struct {
		UpcomingContests []struct {
			Title     string `json:"title"`
			TitleSlug string `json:"titleSlug"`
			StartTime int64  `json:"startTime"`
			Duration  int    `json:"duration"`
		} `json:"upcomingContests"`
	} `json:"data"`
}

func (s *LeetcodeContestSource) Upcoming() ([]ContestCandidate, error) {
	body, err := json.Marshal(map[string]string{"query": leetcodeContestQuery})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	resp, err := s.httpClient.Post(s.baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var parsed leetcodeContestResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	var candidates []ContestCandidate
	for _, c := range parsed.Data.UpcomingContests {
		candidates = append(candidates, ContestCandidate{
			Name:            c.Title,
			Platform:        PlatformLeetcode,
			URL:             "https://leetcode.com/contest/" + c.TitleSlug,
			StartTime:       time.Unix(c.StartTime, 0).UTC().Format(time.RFC3339),
			DurationSeconds: c.Duration,
		})
	}
	return candidates, nil
}
