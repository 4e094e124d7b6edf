package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"cec-reporter/internal/metrics"
	"cec-reporter/internal/report"
)

func TestHandleHealth(t *testing.T) {
	server := NewServer(report.NewReporter(nil), prometheus.NewRegistry())
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestHandleStats(t *testing.T) {
	r := report.NewReporter(nil)
	r.Dedup().MarkReported("Sol", "3")
	server := NewServer(r, prometheus.NewRegistry())

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	var got statsResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Reported["Sol"]) != 1 || got.Reported["Sol"][0] != "3" {
		t.Errorf("unexpected dedup snapshot %v", got.Reported)
	}
	if len(got.Statistics) == 0 {
		t.Errorf("expected the initial statistics snapshot")
	}
}

func TestHandleMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.IncrementBuilt("codex")
	server := NewServer(report.NewReporter(nil), reg)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), `cec_reports_built_total{category="codex"} 1`) {
		t.Errorf("metric missing from output:\n%s", w.Body.String())
	}
}
