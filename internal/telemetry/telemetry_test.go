package telemetry

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHandlerExposesInstruments(t *testing.T) {
	t.Parallel()
	tele := New()
	tele.BillsLoaded.Set(42)
	tele.RawSkipped.Set(3)
	tele.Exports.Inc()
	tele.Searches.Inc()
	tele.ObserveRequest("GET", "/", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	tele.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"billtracker_bills_loaded 42",
		"billtracker_raw_records_skipped 3",
		"billtracker_csv_exports_total 1",
		"billtracker_searches_total 1",
		`billtracker_http_requests_total{method="GET",path="/",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}

func TestObserveRequestCounts(t *testing.T) {
	t.Parallel()
	tele := New()
	tele.ObserveRequest("GET", "/export.csv", 200, time.Millisecond)
	tele.ObserveRequest("GET", "/export.csv", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	tele.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `status="200"} 2`) {
		t.Fatalf("expected request counter at 2:\n%s", rec.Body.String())
	}
}
