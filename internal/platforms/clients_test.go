package platforms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeetcodeFetchParsesProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"matchedUser":{
			"username":"someone",
			"profile":{"ranking":12345},
			"submitStatsGlobal":{"acSubmissionNum":[
				{"difficulty":"All","count":300},
				{"difficulty":"Easy","count":150},
				{"difficulty":"Medium","count":120},
				{"difficulty":"Hard","count":30}
			]}
		}}}`))
	}))
	defer server.Close()

	client := NewLeetcodeClient()
	client.baseURL = server.URL

	profile := client.Fetch("someone")
	assert.Equal(t, PlatformLeetcode, profile.Platform)
	assert.Equal(t, 300, profile.TotalSolved)
	assert.Equal(t, DifficultyBreakdown{Easy: 150, Medium: 120, Hard: 30}, profile.Breakdown)
	assert.Equal(t, 12345, profile.Ranking)
}

func TestLeetcodeFetchFallsBackOnUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"matchedUser":null}}`))
	}))
	defer server.Close()

	client := NewLeetcodeClient()
	client.baseURL = server.URL

	profile := client.Fetch("nobody")
	require.NotNil(t, profile)
	assert.Equal(t, PlatformLeetcode, profile.Platform)
	assert.Equal(t, "nobody", profile.Identifier)
	assert.Equal(t, SyntheticProfile(PlatformLeetcode, "nobody"), profile)
}

func TestLeetcodeFetchFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewLeetcodeClient()
	client.baseURL = server.URL

	profile := client.Fetch("someone")
	assert.Equal(t, SyntheticProfile(PlatformLeetcode, "someone"), profile)
}

func TestCodeforcesFetchDedupesSolvedProblems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user.info":
			w.Write([]byte(`{"status":"OK","result":[{"handle":"h","rating":1650,"rank":"expert"}]}`))
		case "/user.status":
			w.Write([]byte(`{"status":"OK","result":[
				{"verdict":"OK","problem":{"contestId":1,"index":"A","rating":900}},
				{"verdict":"OK","problem":{"contestId":1,"index":"A","rating":900}},
				{"verdict":"WRONG_ANSWER","problem":{"contestId":1,"index":"B","rating":1500}},
				{"verdict":"OK","problem":{"contestId":2,"index":"C","rating":1500}},
				{"verdict":"OK","problem":{"contestId":2,"index":"D","rating":2100}}
			]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewCodeforcesClient()
	client.baseURL = server.URL

	profile := client.Fetch("h")
	assert.Equal(t, 3, profile.TotalSolved, "the repeated accept and the rejected attempt do not count")
	assert.Equal(t, DifficultyBreakdown{Easy: 1, Medium: 1, Hard: 1}, profile.Breakdown)
	assert.Equal(t, 1650, profile.Rating)
	assert.Equal(t, "expert", profile.Extra["rank"])
}

func TestCodeforcesFetchFallsBackOnFailedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"FAILED","result":[]}`))
	}))
	defer server.Close()

	client := NewCodeforcesClient()
	client.baseURL = server.URL

	profile := client.Fetch("ghost")
	assert.Equal(t, SyntheticProfile(PlatformCodeforces, "ghost"), profile)
}

func TestGFGFetchFoldsSchoolAndBasicIntoEasy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geek", r.URL.Path)
		w.Write([]byte(`{
			"info":{"userName":"geek","totalProblemsSolved":100,"codingScore":350,"instituteRank":12},
			"solvedStats":{
				"school":{"count":10},"basic":{"count":15},
				"easy":{"count":30},"medium":{"count":35},"hard":{"count":10}
			}
		}`))
	}))
	defer server.Close()

	client := NewGFGClient()
	client.baseURL = server.URL

	profile := client.Fetch("geek")
	assert.Equal(t, 100, profile.TotalSolved)
	assert.Equal(t, DifficultyBreakdown{Easy: 55, Medium: 35, Hard: 10}, profile.Breakdown)
	assert.Equal(t, 350, profile.Extra["coding_score"])
	assert.Equal(t, 12, profile.Ranking)
}

func TestGFGFetchFallsBackOnMissingUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"info":{"userName":""}}`))
	}))
	defer server.Close()

	client := NewGFGClient()
	client.baseURL = server.URL

	profile := client.Fetch("missing")
	assert.Equal(t, SyntheticProfile(PlatformGFG, "missing"), profile)
}
