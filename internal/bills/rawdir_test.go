package bills

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func writeRaw(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write raw fixture: %v", err)
	}
}

func TestLoadRawDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeRaw(t, dir, "MA_H1234.json", `{
		"state": "MA", "bill_number": "H1234",
		"history":  [{"date": "2025-03-01", "action": "Introduced"}],
		"progress": [{"date": "2025-05-10"}],
		"texts":    [{"date": "2025-11-15"}]
	}`)
	writeRaw(t, dir, "notes.txt", "not a record")

	records, skipped := LoadRawDir(dir, discardLogger())
	if skipped != 0 {
		t.Fatalf("expected nothing skipped, got %d", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec, ok := records["MA_H1234"]
	if !ok {
		t.Fatalf("record not keyed by state_billnumber: %v", records)
	}
	dates := rec.EventDates()
	if len(dates) != 3 {
		t.Fatalf("expected 3 event dates, got %d", len(dates))
	}
	if dates[0].Format("2006-01-02") != "2025-03-01" || dates[2].Format("2006-01-02") != "2025-11-15" {
		t.Fatalf("event dates not sorted ascending: %v", dates)
	}
}

func TestLoadRawDirSkipsBadFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeRaw(t, dir, "broken.json", `{"state": "MA", "bill_number":`)
	writeRaw(t, dir, "keyless.json", `{"history": [{"date": "2025-01-01"}]}`)
	writeRaw(t, dir, "ok.json", `{"state": "RI", "bill_number": "H5169"}`)

	records, skipped := LoadRawDir(dir, discardLogger())
	if skipped != 2 {
		t.Fatalf("expected 2 skipped files, got %d", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("expected only the valid record, got %d", len(records))
	}
	if _, ok := records["RI_H5169"]; !ok {
		t.Fatalf("valid record missing: %v", records)
	}
}

func TestLoadRawDirMissing(t *testing.T) {
	t.Parallel()
	records, skipped := LoadRawDir(filepath.Join(t.TempDir(), "absent"), discardLogger())
	if len(records) != 0 || skipped != 0 {
		t.Fatalf("expected empty result for missing dir, got %d records %d skipped", len(records), skipped)
	}
}

func TestEventDatesDropMalformed(t *testing.T) {
	t.Parallel()
	rec := RawRecord{
		State:      "MA",
		BillNumber: "H1",
		History:    []RawEvent{{Date: "2025-02-01"}, {Date: "bogus"}, {Date: ""}},
	}
	dates := rec.EventDates()
	if len(dates) != 1 {
		t.Fatalf("expected malformed dates dropped, got %v", dates)
	}
}
