package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mmynk/settle/internal/service"
	"github.com/mmynk/settle/internal/storage/sqlite"
)

// setupTestServer starts an httptest server backed by a temp SQLite store.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	srv := NewServer(service.NewSettleService(store), service.NewRosterService(store))
	ts := httptest.NewServer(srv.Handler())

	t.Cleanup(func() {
		ts.Close()
		store.Close()
	})
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestComputeSettlementsEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/settlements", computeRequest{
		Participants: []string{"Alice", "Bob", "Charlie"},
		Expenses: []expensePayload{
			{Description: "Pizza", PaidBy: "Alice", Amount: 20, SharedWith: "All"},
			{Description: "Gas", PaidBy: "Bob", Amount: 40, SharedWith: "Bob, Alice"},
			{Description: "Coffee", PaidBy: "Charlie", Amount: 15, SharedWith: "All"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result computeResponse
	decodeBody(t, resp, &result)

	if len(result.Simplified) > 2 {
		t.Errorf("simplified = %v, want <= 2 transfers", result.Simplified)
	}
	if len(result.Balances) != 3 {
		t.Errorf("balances = %v, want 3 entries", result.Balances)
	}
	if len(result.Summary) != 3 {
		t.Errorf("summary = %v, want one row per participant", result.Summary)
	}

	var sum float64
	for _, b := range result.Balances {
		sum += b.Net
	}
	if math.Abs(sum) > 0.03 {
		t.Errorf("net balances sum to %v, want ~0", sum)
	}
}

func TestComputeSettlementsEndpoint_Warnings(t *testing.T) {
	ts := setupTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/settlements", computeRequest{
		Participants: []string{"Alice", "Bob"},
		Expenses: []expensePayload{
			{Description: "Ghost round", PaidBy: "Eve", Amount: 50, SharedWith: "All"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result computeResponse
	decodeBody(t, resp, &result)

	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %v, want 1", result.Warnings)
	}
	if len(result.Simplified) != 0 {
		t.Errorf("simplified = %v, want empty", result.Simplified)
	}
}

func TestComputeSettlementsEndpoint_BadRequests(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("empty participants", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/v1/settlements", computeRequest{})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/v1/settlements", "application/json",
			bytes.NewReader([]byte("{nope")))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestRosterEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	// Create
	resp := postJSON(t, ts.URL+"/v1/rosters", createRosterRequest{
		Name:    "Trip",
		Members: []string{"Alice", "Bob", "Charlie"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created rosterPayload
	decodeBody(t, resp, &created)
	if created.ID == "" {
		t.Fatal("expected roster ID to be assigned")
	}

	// List
	listResp, err := http.Get(ts.URL + "/v1/rosters")
	if err != nil {
		t.Fatalf("GET rosters failed: %v", err)
	}
	var rosters []rosterPayload
	decodeBody(t, listResp, &rosters)
	if len(rosters) != 1 {
		t.Errorf("rosters = %v, want 1", rosters)
	}

	// Compute against the roster
	compResp := postJSON(t, fmt.Sprintf("%s/v1/rosters/%s/settlements", ts.URL, created.ID),
		map[string]interface{}{
			"expenses": []expensePayload{
				{Description: "Hotel", PaidBy: "Alice", Amount: 90, SharedWith: "All"},
			},
		})
	if compResp.StatusCode != http.StatusOK {
		t.Fatalf("compute status = %d, want 200", compResp.StatusCode)
	}
	var result computeResponse
	decodeBody(t, compResp, &result)
	if len(result.Simplified) != 2 {
		t.Errorf("simplified = %v, want 2 transfers", result.Simplified)
	}

	// Delete
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/v1/rosters/"+created.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("delete status = %d, want 200", delResp.StatusCode)
	}

	// Gone
	getResp, err := http.Get(ts.URL + "/v1/rosters/" + created.ID)
	if err != nil {
		t.Fatalf("GET roster failed: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("get-after-delete status = %d, want 404", getResp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMetricsEndpointOptIn(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	srv := NewServer(service.NewSettleService(store), service.NewRosterService(store))
	srv.EnableMetrics()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
