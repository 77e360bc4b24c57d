package server

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

func TestExportDefaultView(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/export.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("export got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "filtered_bills.csv") {
		t.Fatalf("content disposition got %q", got)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("content type got %q", got)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	// Header plus the two 2025 bills from the default view.
	if len(records) != 3 {
		t.Fatalf("expected 3 csv records, got %d", len(records))
	}
	header := strings.Join(records[0], ",")
	for _, col := range []string{"state", "bill_number", "start_date", "end_date", "start_estimated", "completion_label"} {
		if !strings.Contains(header, col) {
			t.Fatalf("export header missing %s: %s", col, header)
		}
	}
}

func TestExportRespectsFilters(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/export.csv?year=2024&state=NY&completion=Not+Completed")
	if rec.Code != http.StatusOK {
		t.Fatalf("export got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "S0402") {
		t.Fatalf("filtered bill missing from export")
	}
	if strings.Contains(body, "H1234") {
		t.Fatalf("export leaked a bill outside the filter")
	}
}

func TestExportEmptySelection(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/export.csv?apply=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("export got %d", rec.Code)
	}
	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}
