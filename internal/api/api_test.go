package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func testHandler() *Handler {
	return NewHandler(log.NewWithOptions(io.Discard, log.Options{}), 0)
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(testHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestEmbedEndpoint(t *testing.T) {
	srv := httptest.NewServer(testHandler())
	defer srv.Close()

	req := `{
		"problem": {"n": 4, "m": 6, "a": [1,1,1,2,2,3], "b": [2,3,4,3,4,4]},
		"validate": true
	}`
	resp, err := http.Post(srv.URL+"/v1/embed", "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatalf("POST /v1/embed error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var body embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.RunID == "" {
		t.Error("run_id is empty")
	}
	if body.Case != "complete" {
		t.Errorf("case = %q, want complete", body.Case)
	}
	if body.Report == nil || !body.Report.Pass {
		t.Errorf("report = %+v, want pass", body.Report)
	}
	if len(body.Grid) != body.Rows {
		t.Errorf("grid has %d rows, header says %d", len(body.Grid), body.Rows)
	}
}

func TestEmbedEndpointBadRequests(t *testing.T) {
	srv := httptest.NewServer(testHandler())
	defer srv.Close()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"problem": `},
		{name: "unknown field", body: `{"problem": {"n": 1, "m": 0}, "bogus": true}`},
		{name: "unknown format", body: `{"problem": {"n": 1, "m": 0}, "formats": ["tiff"]}`},
		{name: "self loop", body: `{"problem": {"n": 2, "m": 1, "a": [1], "b": [1]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/v1/embed", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST error = %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv := httptest.NewServer(testHandler())
	defer srv.Close()

	req := `{
		"problem": {"n": 2, "m": 1, "a": [1], "b": [2]},
		"grid": [[1, 2]]
	}`
	resp, err := http.Post(srv.URL+"/v1/validate", "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatalf("POST /v1/validate error = %v", err)
	}
	defer resp.Body.Close()

	var body reportBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Pass {
		t.Errorf("pass = false, diagnostics = %v", body.Diagnostics)
	}
}

func TestValidateEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(testHandler())
	defer srv.Close()

	// Countries 1 and 2 touch but no border is required.
	req := `{
		"problem": {"n": 2, "m": 0, "a": [], "b": []},
		"grid": [[1, 2]]
	}`
	resp, err := http.Post(srv.URL+"/v1/validate", "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatalf("POST /v1/validate error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (a failed verdict is not an HTTP error)", resp.StatusCode)
	}
	var body reportBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Pass {
		t.Error("pass = true, want failed verdict")
	}
	if len(body.Diagnostics) == 0 {
		t.Error("failed verdict carries no diagnostics")
	}
}
