// Package api_test - HTTP endpoint tests
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roadcost/api"
	"roadcost/catalog"
	"roadcost/volume"
)

func testServer(t *testing.T) *api.Server {
	t.Helper()
	cat := catalog.NewWithDefaults()
	return api.NewServer(api.Options{
		Rates:         cat,
		RateLister:    cat,
		Items:         cat,
		Source:        volume.NewSynthetic(),
		ReportDir:     t.TempDir(),
		ReportBaseURL: "/reports",
		Version:       "test",
	})
}

func postEstimate(t *testing.T, server *api.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestEstimateEndpoint(t *testing.T) {
	server := testServer(t)

	rec := postEstimate(t, server, `{
		"project_id": "HWY-2095",
		"alignment_id": "ALT-B",
		"report_format": "json"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ProjectID   string  `json:"project_id"`
		TotalCost   float64 `json:"total_cost"`
		CostPerKm   float64 `json:"cost_per_km"`
		ReportURL   string  `json:"report_url"`
		RenderError string  `json:"render_error"`
		Breakdown   struct {
			Total         float64 `json:"total"`
			IndirectCosts float64 `json:"indirect_costs"`
			Contingency   float64 `json:"contingency"`
		} `json:"breakdown"`
		Metadata struct {
			RequestID     string `json:"request_id"`
			EngineVersion string `json:"engine_version"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.ProjectID != "HWY-2095" {
		t.Errorf("expected project echo, got %s", resp.ProjectID)
	}
	if resp.TotalCost <= 0 {
		t.Errorf("expected positive total, got %v", resp.TotalCost)
	}
	if resp.TotalCost != resp.Breakdown.Total {
		t.Errorf("total %v differs from breakdown total %v", resp.TotalCost, resp.Breakdown.Total)
	}
	// Default markups are applied
	if resp.Breakdown.IndirectCosts <= 0 || resp.Breakdown.Contingency <= 0 {
		t.Error("expected default markup lines in breakdown")
	}
	if resp.RenderError != "" {
		t.Errorf("unexpected render error: %s", resp.RenderError)
	}
	if !strings.HasPrefix(resp.ReportURL, "/reports/cost_estimate_HWY-2095_ALT-B_") {
		t.Errorf("unexpected report URL: %s", resp.ReportURL)
	}
	if resp.Metadata.RequestID == "" || resp.Metadata.EngineVersion != "test" {
		t.Errorf("incomplete metadata: %+v", resp.Metadata)
	}
}

func TestEstimateEndpointServesReport(t *testing.T) {
	server := testServer(t)

	rec := postEstimate(t, server, `{
		"project_id": "HWY-2095",
		"alignment_id": "ALT-B",
		"report_format": "csv"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		ReportURL string `json:"report_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	get := httptest.NewRequest(http.MethodGet, resp.ReportURL, nil)
	getRec := httptest.NewRecorder()
	server.ServeHTTP(getRec, get)
	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200 downloading report, got %d", getRec.Code)
	}
	if !strings.HasPrefix(getRec.Body.String(), "item_code,") {
		t.Errorf("unexpected report content: %.60s", getRec.Body.String())
	}
}

func TestEstimateEndpointValidation(t *testing.T) {
	server := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing project", `{"alignment_id": "ALT-B"}`},
		{"missing alignment", `{"project_id": "HWY-2095"}`},
		{"negative contingency", `{"project_id": "P", "alignment_id": "A", "contingency_percentage": -5}`},
		{"bad format", `{"project_id": "P", "alignment_id": "A", "report_format": "docx"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postEstimate(t, server, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestEstimateEndpointUnknownRegion(t *testing.T) {
	server := testServer(t)

	// An unknown region yields an empty snapshot: every line is skipped
	rec := postEstimate(t, server, `{
		"project_id": "HWY-2095",
		"alignment_id": "ALT-B",
		"region": "nowhere"
	}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if resp.Error.Code != "EMPTY_LEDGER" {
		t.Errorf("expected EMPTY_LEDGER code, got %s", resp.Error.Code)
	}
}

func TestReportEndpointRejectsTraversal(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/"+"%2e%2e%2fsecret", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code == http.StatusOK {
		t.Errorf("expected traversal rejection, got %d", rec.Code)
	}
}

func TestReportEndpointMissingFile(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/no-such-report.csv", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestRatesEndpoint(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/rates", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Region string `json:"region"`
		Count  int    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Region != "default" {
		t.Errorf("expected default region, got %s", resp.Region)
	}
	if resp.Count != 11 {
		t.Errorf("expected 11 default rates, got %d", resp.Count)
	}
}

func TestItemsEndpoint(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 9 {
		t.Errorf("expected 9 cost items, got %d", resp.Count)
	}
}

func TestHealthAndVersion(t *testing.T) {
	server := testServer(t)

	for _, path := range []string{"/health", "/version"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %s", ct)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/estimate", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
