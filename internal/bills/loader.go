package bills

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns is the summary-table schema, in canonical order. Loading
// fails fast when any of these is missing from the header.
var RequiredColumns = []string{
	"state",
	"bill_number",
	"title",
	"dem_sponsors",
	"rep_sponsors",
	"session_start",
	"session_end",
	"last_action_date",
	"completed",
	"last_action",
}

// LoadSummary reads the summary CSV into typed rows. The header is
// validated once up front; the error names every missing column. Rows with
// a blank natural key are rejected with their line number. Numeric and
// date fields are coerced leniently: malformed values become zero values
// and cascade through the resolver's fallback chain instead of failing
// the load.
func LoadSummary(path string) ([]Bill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary: %w", err)
	}
	defer f.Close()
	return readSummary(f, path)
}

func readSummary(r io.Reader, name string) ([]Bill, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("summary %s: read header: %w", name, err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("summary %s: missing required columns: %s", name, strings.Join(missing, ", "))
	}

	field := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []Bill
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("summary %s line %d: %w", name, line, err)
		}

		b := Bill{
			State:        strings.TrimSpace(field(row, "state")),
			BillNumber:   strings.TrimSpace(field(row, "bill_number")),
			Title:        field(row, "title"),
			DemSponsors:  parseCount(field(row, "dem_sponsors")),
			RepSponsors:  parseCount(field(row, "rep_sponsors")),
			SessionStart: parseYear(field(row, "session_start")),
			SessionEnd:   parseYear(field(row, "session_end")),
			Completed:    parseCompleted(field(row, "completed")),
			LastAction:   field(row, "last_action"),
		}
		if b.State == "" || b.BillNumber == "" {
			return nil, fmt.Errorf("summary %s line %d: state and bill_number are required", name, line)
		}
		if d, ok := ParseDate(field(row, "last_action_date")); ok {
			b.LastActionDate = d
		}
		out = append(out, b)
	}
	return out, nil
}

// parseInt coerces "3", "3.0", and padded variants; anything else is 0.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func parseCount(s string) int {
	n, _ := parseInt(s)
	if n < 0 {
		return 0
	}
	return n
}

func parseYear(s string) int {
	n, ok := parseInt(s)
	if !ok || n <= 0 {
		return 0
	}
	return n
}

func parseCompleted(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0
	}
	return false
}
