package bills

import (
	"log"
	"sort"
	"time"
)

// Dataset is the loaded and date-resolved bill collection. It is built once
// at startup and never mutated afterwards, so handlers may share it freely.
type Dataset struct {
	bills      []ResolvedBill
	years      []int
	states     []string
	skippedRaw int
	loadedAt   time.Time
}

// Load reads the summary CSV, overlays the raw record directory, and resolves
// dates for every row. Summary problems are fatal; raw directory problems
// only shrink the overlay.
func Load(summaryPath, rawDir string, logger *log.Logger, debug bool) (*Dataset, error) {
	rows, err := LoadSummary(summaryPath)
	if err != nil {
		return nil, err
	}

	raw, skipped := LoadRawDir(rawDir, logger)
	resolved := ResolveAll(rows, raw, logger, debug)

	d := &Dataset{
		bills:      resolved,
		skippedRaw: skipped,
		loadedAt:   time.Now().UTC(),
	}
	d.collectOptions()

	logger.Printf("loaded %d bills from %s (%d raw records, %d skipped)",
		len(resolved), summaryPath, len(raw), skipped)
	return d, nil
}

func (d *Dataset) collectOptions() {
	yearSet := map[int]struct{}{}
	stateSet := map[string]struct{}{}
	for _, b := range d.bills {
		if b.SessionStart > 0 {
			yearSet[b.SessionStart] = struct{}{}
		}
		if b.State != "" {
			stateSet[b.State] = struct{}{}
		}
	}
	d.years = make([]int, 0, len(yearSet))
	for y := range yearSet {
		d.years = append(d.years, y)
	}
	sort.Ints(d.years)
	d.states = make([]string, 0, len(stateSet))
	for s := range stateSet {
		d.states = append(d.states, s)
	}
	sort.Strings(d.states)
}

// Bills returns every resolved row in source order. Callers must not modify
// the returned slice.
func (d *Dataset) Bills() []ResolvedBill { return d.bills }

// Len is the number of loaded bills.
func (d *Dataset) Len() int { return len(d.bills) }

// Years lists the distinct session start years, ascending.
func (d *Dataset) Years() []int { return d.years }

// States lists the distinct state codes, ascending.
func (d *Dataset) States() []string { return d.states }

// SkippedRaw is the number of raw files the overlay could not use.
func (d *Dataset) SkippedRaw() int { return d.skippedRaw }

// LoadedAt is when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// MostRecentYear returns the latest session start year, or 0 when no bill
// carries one.
func (d *Dataset) MostRecentYear() int {
	if len(d.years) == 0 {
		return 0
	}
	return d.years[len(d.years)-1]
}

// DefaultSelection is the view presented before the user touches a filter:
// the most recent session year (all years when none is known), every state,
// and both completion labels.
func (d *Dataset) DefaultSelection() Selection {
	years := d.years
	if y := d.MostRecentYear(); y != 0 {
		years = []int{y}
	}
	sel := Selection{
		Years:      append([]int(nil), years...),
		States:     append([]string(nil), d.states...),
		Completion: []string{LabelCompleted, LabelNotCompleted},
	}
	return sel
}

// AllSelection matches every loaded bill that has a known session year.
func (d *Dataset) AllSelection() Selection {
	return Selection{
		Years:      append([]int(nil), d.years...),
		States:     append([]string(nil), d.states...),
		Completion: []string{LabelCompleted, LabelNotCompleted},
	}
}
