package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ChicagoDave/houseplanner/internal/config"
	"github.com/ChicagoDave/houseplanner/pkg/cache"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/scene2d"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

func newTestServer(t *testing.T, c cache.Cache) http.Handler {
	t.Helper()
	cfg := config.Config{MaxBodyBytes: 1 << 16}
	return New(cfg, c, log.New(io.Discard)).Handler()
}

func sqliteCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewSQLiteCache(context.Background(), filepath.Join(t.TempDir(), "models.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func demoBody(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(plan.Demo())
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func do(h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeModel(t *testing.T, rec *httptest.ResponseRecorder) ModelResponse {
	t.Helper()
	var resp ModelResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestGenerateModel(t *testing.T) {
	h := newTestServer(t, nil)
	rec := do(h, http.MethodPost, "/api/models", demoBody(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	resp := decodeModel(t, rec)
	if resp.Cached {
		t.Error("first response should not be cached")
	}
	if resp.Key != cache.ModelKey(plan.Demo()) {
		t.Errorf("key = %q", resp.Key)
	}
	if resp.Stats.ExteriorWalls != 8 {
		t.Errorf("exterior walls = %d, want 8", resp.Stats.ExteriorWalls)
	}
	if len(resp.Model.RoofPlanes) != 2 {
		t.Errorf("roof planes = %d, want 2", len(resp.Model.RoofPlanes))
	}
	if resp.Cost == nil || resp.Cost.Summary.TotalConstruction <= 0 {
		t.Errorf("cost = %+v", resp.Cost)
	}
	if resp.Report == nil || len(resp.Report.Warnings) != 0 {
		t.Errorf("report = %+v", resp.Report)
	}
}

func TestGenerateModelUsesCache(t *testing.T) {
	h := newTestServer(t, sqliteCache(t))
	body := demoBody(t)

	first := decodeModel(t, do(h, http.MethodPost, "/api/models", body))
	if first.Cached {
		t.Fatal("first response should be a miss")
	}
	second := decodeModel(t, do(h, http.MethodPost, "/api/models", body))
	if !second.Cached {
		t.Error("second response should come from the cache")
	}
	if second.Key != first.Key || len(second.Model.Walls) != len(first.Model.Walls) {
		t.Errorf("cached model differs: %d vs %d walls", len(second.Model.Walls), len(first.Model.Walls))
	}

	rec := do(h, http.MethodGet, "/api/models/"+first.Key, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if got := decodeModel(t, rec); !got.Cached || got.Key != first.Key {
		t.Errorf("get = cached %v key %q", got.Cached, got.Key)
	}
}

func TestGenerateHugeSquareFootage(t *testing.T) {
	body := []byte(`{"stories":1,"total_square_footage":1e308,"architectural_style":"ranch","roof_type":"hip"}`)
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/models", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	resp := decodeModel(t, rec)
	if resp.Model.Metadata.TotalSquareFootage != validation.MaxTotalSquareFeet {
		t.Errorf("sqft = %v, want clamp to %v", resp.Model.Metadata.TotalSquareFootage, validation.MaxTotalSquareFeet)
	}
	if len(resp.Report.Warnings) == 0 {
		t.Error("expected a clamp warning")
	}
}

func TestWriteJSONUnencodable(t *testing.T) {
	s := New(config.Config{}, nil, log.New(io.Discard))
	rec := httptest.NewRecorder()
	s.writeJSON(rec, http.StatusOK, map[string]float64{"area": math.Inf(1)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestGetPlanView(t *testing.T) {
	h := newTestServer(t, sqliteCache(t))
	first := decodeModel(t, do(h, http.MethodPost, "/api/models", demoBody(t)))

	rec := do(h, http.MethodGet, "/api/models/"+first.Key+"/plan", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var view scene2d.Scene2D
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatal(err)
	}
	if len(view.Floors) != 2 || len(view.Site) != len(first.Model.SiteElements) {
		t.Errorf("plan view = %d floors, %d site elements", len(view.Floors), len(view.Site))
	}

	if rec := do(h, http.MethodGet, "/api/models/model:v1:nope/plan", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing model status = %d, want 404", rec.Code)
	}
}

func TestGetModelMissing(t *testing.T) {
	rec := do(newTestServer(t, sqliteCache(t)), http.MethodGet, "/api/models/model:v1:nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["error"], "not found") {
		t.Errorf("error = %q", body["error"])
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestServer(t, nil)
	tests := []struct {
		name string
		path string
		body []byte
	}{
		{"malformed json", "/api/models", []byte("{stories:")},
		{"wrong type", "/api/models", []byte(`{"stories": "two"}`)},
		{"validate malformed", "/api/validate", []byte("[")},
		{"too large", "/api/models", append([]byte(`{"architectural_style":"`), bytes.Repeat([]byte("x"), 1<<17)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, tt.path, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(h, http.MethodPost, "/api/validate", demoBody(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report validation.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if !report.Valid || len(report.Warnings) != 0 {
		t.Errorf("demo report = %+v", report)
	}

	rec = do(h, http.MethodPost, "/api/validate", []byte(`{"stories": 9, "architectural_style": "Brutalist"}`))
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if report.Valid || len(report.Errors) == 0 {
		t.Error("expected errors for an out-of-range plan")
	}
}

func TestDemoEndpoint(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodGet, "/api/demo", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	p, err := plan.ParseJSON(rec.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if p.Stories != plan.Demo().Stories || len(p.Rooms) != len(plan.Demo().Rooms) {
		t.Errorf("demo = %+v", p)
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(h, http.MethodGet, "/healthz", nil)
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want caller's id", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodGet, "/api/nothing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
