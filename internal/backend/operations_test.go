package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewdesk/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_MapsRequestAndResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "s3cret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","username":"alice","role":"EXPERT"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	result, err := client.Login(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, "EXPERT", result.User.Role)
}

func TestListPapers_UnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/papers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"p1","title":"First","author":"A","status":"PENDING"},
			{"id":"p2","title":"Second","author":"B","status":"ASSIGNED","score":76.5}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	papers, err := client.ListPapers(context.Background())

	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, backend.StatusPending, papers[0].Status)
	assert.Nil(t, papers[0].Score)
	require.NotNil(t, papers[1].Score)
	assert.InDelta(t, 76.5, *papers[1].Score, 0.001)
}

func TestSubmitReview_SendsExactBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	err := client.SubmitReview(context.Background(), "p1", 85, "Solid work")

	require.NoError(t, err)
	assert.Equal(t, "/reviews", gotPath)
	assert.Equal(t, map[string]interface{}{
		"paperId":  "p1",
		"score":    float64(85),
		"comments": "Solid work",
	}, gotBody)
}

func TestGetPaper_EscapesID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"a b","title":"T","author":"A","status":"PENDING"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	paper, err := client.GetPaper(context.Background(), "a b")

	require.NoError(t, err)
	assert.Equal(t, "/papers/a%20b", gotPath)
	assert.Equal(t, "a b", paper.ID)
}

func TestAssignedReviews_UnwrapsNestedPaper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reviews/assigned", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"paper":{"id":"p1","title":"T","author":"A","status":"ASSIGNED"},"status":"assigned"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	assignments, err := client.AssignedReviews(context.Background())

	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "p1", assignments[0].Paper.ID)
	assert.Equal(t, backend.StatusAssigned, assignments[0].Paper.Status)
}

func TestPaperReviews_UnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/papers/p1/reviews", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"paperId":"p1","reviewerName":"Dr. X","score":90,"comments":""}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	reviews, err := client.PaperReviews(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Dr. X", reviews[0].ReviewerName)
	assert.Equal(t, 90, reviews[0].Score)
	assert.Empty(t, reviews[0].Comments)
}

func TestStatistics_PathAndMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/statistics", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"totalPapers":12,"pendingPapers":3,"assignedPapers":5,"reviewedPapers":4,"expertCount":2,"reviewCount":7}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	stats, err := client.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalPapers)
	assert.Equal(t, 4, stats.ReviewedPapers)
	assert.Equal(t, 2, stats.ExpertCount)
}

func TestTriggerAssignment_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/assign", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	assert.NoError(t, client.TriggerAssignment(context.Background()))
}
