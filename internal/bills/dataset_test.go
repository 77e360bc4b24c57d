package bills

import (
	"testing"
)

func TestLoadComposesRawOverlay(t *testing.T) {
	t.Parallel()
	path := writeSummary(t, summaryHeader+
		"MA,H1234,x,1,1,2025,2026,,0,y\n")
	rawDir := t.TempDir()
	writeRaw(t, rawDir, "MA_H1234.json", `{
		"state": "MA", "bill_number": "H1234",
		"history": [{"date": "2025-03-01"}, {"date": "2025-11-15"}]
	}`)
	writeRaw(t, rawDir, "broken.json", `{`)

	d, err := Load(path, rawDir, discardLogger(), false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.SkippedRaw() != 1 {
		t.Fatalf("expected 1 skipped raw file, got %d", d.SkippedRaw())
	}
	b := d.Bills()[0]
	if b.StartSource != SourceEvents || b.EndSource != SourceEvents {
		t.Fatalf("raw overlay not applied: sources %s/%s", b.StartSource, b.EndSource)
	}
	if d.LoadedAt().IsZero() {
		t.Fatalf("expected load timestamp")
	}
}

func TestLoadWithoutRawDir(t *testing.T) {
	t.Parallel()
	path := writeSummary(t, summaryHeader+
		"MA,H1,x,1,1,2025,2026,,0,y\n")

	d, err := Load(path, "", discardLogger(), false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Bills()[0].StartSource != SourceSession {
		t.Fatalf("expected session fallback without raw records, got %s", d.Bills()[0].StartSource)
	}
}

func TestLoadSummaryErrorIsFatal(t *testing.T) {
	t.Parallel()
	path := writeSummary(t, "state,title\nMA,x\n")
	if _, err := Load(path, "", discardLogger(), false); err == nil {
		t.Fatalf("expected load to fail on bad schema")
	}
}
