package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/pipeline"
)

// =============================================================================
// Test Helpers
// =============================================================================

func testHandler(t *testing.T) *Handler {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(fc, nil, logger)
	t.Cleanup(func() { _ = runner.Close() })
	return NewHandler(runner, logger)
}

const validBody = `{
  "config": {
    "dimensions": {"width": 1000, "length": 2000, "height": 600, "unit": "cm"},
    "num_sections": 2,
    "sections": [
      {"num_floors": 2, "num_rows": 4, "num_columns": 2},
      {"num_floors": 2, "num_rows": 4, "num_columns": 2}
    ]
  }
}`

const invalidBody = `{
  "config": {
    "dimensions": {"width": -10, "length": 2000, "height": 600, "unit": "cm"},
    "num_sections": 1,
    "sections": [
      {"num_floors": 2, "num_rows": 4, "num_columns": 2}
    ]
  }
}`

func doRequest(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Tests
// =============================================================================

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHandleVersion(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/version", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp VersionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Version == "" {
		t.Error("version should be set")
	}
}

func TestHandleComputeLayout(t *testing.T) {
	h := testHandler(t)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/layout", validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp LayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.LayoutID == "" {
		t.Error("layout_id should be set")
	}
	if resp.ConfigHash == "" {
		t.Error("config_hash should be set")
	}
	if resp.Tree == nil {
		t.Fatal("tree should be set")
	}
	if got := resp.Tree.RackCount(); got != 32 {
		t.Errorf("rack count = %d, want 32", got)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", resp.Warnings)
	}

	// Same config again is served from cache with a fresh layout ID
	rec2 := doRequest(t, h, http.MethodPost, "/api/v1/layout", validBody)
	var resp2 LayoutResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp2.Cached {
		t.Error("second request should be served from cache")
	}
	if resp2.LayoutID == resp.LayoutID {
		t.Error("each request should get its own layout_id")
	}
}

func TestHandleComputeLayoutInvalidConfig(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodPost, "/api/v1/layout", invalidBody)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body: %s", rec.Code, rec.Body.String())
	}

	var resp ValidationFailureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) == 0 {
		t.Fatal("errors should list the violations")
	}
	if resp.Errors[0].Field != "dimensions.width" {
		t.Errorf("field = %q, want dimensions.width", resp.Errors[0].Field)
	}
}

func TestHandleComputeLayoutBadJSON(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodPost, "/api/v1/layout", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGetLayout(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/layout", validBody)
	var created LayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec2 := doRequest(t, h, http.MethodGet, "/api/v1/layout/"+created.LayoutID, "")
	if rec2.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec2.Code)
	}
	var fetched LayoutResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.LayoutID != created.LayoutID {
		t.Errorf("layout_id = %q, want %q", fetched.LayoutID, created.LayoutID)
	}
	if fetched.Tree == nil || fetched.Tree.RackCount() != created.Tree.RackCount() {
		t.Error("fetched tree should match the created tree")
	}
}

func TestHandleGetLayoutNotFound(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/api/v1/layout/unknown-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "not_found" {
		t.Errorf("code = %q, want not_found", resp.Code)
	}
}

func TestHandleValidate(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/validate", validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp ValidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Valid || len(resp.Errors) != 0 {
		t.Errorf("valid = %v errors = %v, want valid with no errors", resp.Valid, resp.Errors)
	}

	rec2 := doRequest(t, h, http.MethodPost, "/api/v1/validate", invalidBody)
	if rec2.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (validation results are not errors)", rec2.Code)
	}
	var resp2 ValidateResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp2.Valid || len(resp2.Errors) == 0 {
		t.Errorf("valid = %v errors = %v, want invalid with errors", resp2.Valid, resp2.Errors)
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/healthz", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header should be set")
	}
}
