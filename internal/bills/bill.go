// Package bills implements the bill-tracking data pipeline: loading the
// summary CSV, reconciling start/end dates against optional raw per-bill
// records, and filtering/aggregating the resulting immutable dataset.
package bills

import "time"

// Completion labels derived from the Completed flag. There is no third value.
const (
	LabelCompleted    = "Completed"
	LabelNotCompleted = "Not Completed"
)

// Bill is one row of the summary table. State and BillNumber form the
// natural key. SessionStart/SessionEnd are years; 0 means unparseable.
// A zero LastActionDate means the column was empty or malformed.
type Bill struct {
	State          string
	BillNumber     string
	Title          string
	DemSponsors    int
	RepSponsors    int
	SessionStart   int
	SessionEnd     int
	LastActionDate time.Time
	Completed      bool
	LastAction     string
}

// Key joins the natural key the way raw record files are keyed.
func (b Bill) Key() string {
	return b.State + "_" + b.BillNumber
}

// Label is the display form used by the timeline.
func (b Bill) Label() string {
	return b.State + " — " + b.BillNumber
}

func (b Bill) CompletionLabel() string {
	if b.Completed {
		return LabelCompleted
	}
	return LabelNotCompleted
}

// DateSource records which tier of the resolution chain produced a date,
// so consumers can tell authoritative dates from inferred ones.
type DateSource string

const (
	SourceEvents     DateSource = "events"      // min/max of raw record event dates
	SourceLastAction DateSource = "last_action" // the summary table's last_action_date
	SourceSession    DateSource = "session"     // constructed from a session year
	SourceFallback   DateSource = "fallback"    // fixed fallback constant
)

// Estimated reports whether the date was inferred rather than observed.
func (s DateSource) Estimated() bool {
	return s == SourceSession || s == SourceFallback
}

// Resolution holds the derived dates for a bill. Both dates are always
// non-zero: the resolver never leaves a bill unresolved.
type Resolution struct {
	StartDate   time.Time
	EndDate     time.Time
	StartSource DateSource
	EndSource   DateSource
}

// ResolvedBill pairs a source row with its derived dates. Source fields are
// never mutated by resolution.
type ResolvedBill struct {
	Bill
	Resolution
}
