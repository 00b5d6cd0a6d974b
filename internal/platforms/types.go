// Package platforms holds the clients for the external coding platforms and the
// synthetic-fallback generation used when a live fetch fails. Profile fetches
// never fail from the caller's point of view: bad network, bad payload or a
// missing user all degrade to plausible synthetic data.
package platforms

const (
	PlatformLeetcode   = "leetcode"
	PlatformCodeforces = "codeforces"
	PlatformGFG        = "gfg"
)

type DifficultyBreakdown struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// PlatformProfile is the unified shape all three platforms normalize into.
// It is ephemeral: fetched on demand and never stored.
type PlatformProfile struct {
	Platform    string                 `json:"platform"`
	Identifier  string                 `json:"identifier"`
	TotalSolved int                    `json:"total_solved"`
	Breakdown   DifficultyBreakdown    `json:"difficulty_breakdown"`
	Ranking     int                    `json:"ranking,omitempty"`
	Rating      int                    `json:"rating,omitempty"`
	Extra       map[string]interface{} `json:"extra,omitempty"`
}

// Fetcher is what the compare/profile flows consume; each platform client and
// the test doubles satisfy it.
type Fetcher interface {
	Fetch(identifier string) *PlatformProfile
}
