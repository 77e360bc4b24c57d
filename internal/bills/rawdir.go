package bills

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// RawEvent is one dated entry in a raw record's history/progress/texts arrays.
type RawEvent struct {
	Date   string `json:"date"`
	Action string `json:"action,omitempty"`
}

// RawRecord is the optional per-bill supplemental file. Only the key fields
// and the three event arrays are read; everything else in the file is
// ignored.
type RawRecord struct {
	State      string     `json:"state"`
	BillNumber string     `json:"bill_number"`
	History    []RawEvent `json:"history"`
	Progress   []RawEvent `json:"progress"`
	Texts      []RawEvent `json:"texts"`
}

func (r RawRecord) Key() string {
	return strings.TrimSpace(r.State) + "_" + strings.TrimSpace(r.BillNumber)
}

// EventDates returns the parseable event dates across all three arrays,
// sorted ascending. Malformed date strings are dropped, not errors.
func (r RawRecord) EventDates() []time.Time {
	var out []time.Time
	for _, events := range [][]RawEvent{r.History, r.Progress, r.Texts} {
		for _, ev := range events {
			if d, ok := ParseDate(ev.Date); ok {
				out = append(out, d)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// LoadRawDir scans dir for *.json raw records keyed by state_billnumber.
// A missing directory yields an empty map. Files that cannot be read or
// parsed, or that lack the key fields, are skipped individually and
// counted; they never abort the scan.
func LoadRawDir(dir string, logger *log.Logger) (map[string]RawRecord, int) {
	records := make(map[string]RawRecord)
	if dir == "" {
		return records, 0
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) && logger != nil {
			logger.Printf("raw dir %s unreadable, continuing without it: %v", dir, err)
		}
		return records, 0
	}

	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			skipped++
			if logger != nil {
				logger.Printf("skipping raw record %s: %v", entry.Name(), err)
			}
			continue
		}
		var rec RawRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			skipped++
			if logger != nil {
				logger.Printf("skipping raw record %s: %v", entry.Name(), err)
			}
			continue
		}
		if strings.TrimSpace(rec.State) == "" || strings.TrimSpace(rec.BillNumber) == "" {
			skipped++
			if logger != nil {
				logger.Printf("skipping raw record %s: missing state/bill_number", entry.Name())
			}
			continue
		}
		records[rec.Key()] = rec
	}
	return records, skipped
}
