package bills

import (
	"sort"
	"strings"
	"time"
)

// Selection is one multi-valued choice per filter dimension. The three
// predicates are ANDed; an empty slice on any dimension matches nothing.
// Callers wanting "no filtering" pass the dataset's DefaultSelection or
// an explicit all-values selection.
type Selection struct {
	Years      []int
	States     []string
	Completion []string
}

// Matches applies the conjunction to a single bill. A bill with an unknown
// session year (0) never matches a year selection, mirroring how a missing
// year can't appear among the selectable options.
func (sel Selection) Matches(b ResolvedBill) bool {
	if b.SessionStart == 0 || !containsInt(sel.Years, b.SessionStart) {
		return false
	}
	if !containsString(sel.States, b.State) {
		return false
	}
	return containsString(sel.Completion, b.CompletionLabel())
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Filter returns the bills matching the selection, in dataset row order.
func (d *Dataset) Filter(sel Selection) []ResolvedBill {
	var out []ResolvedBill
	for _, b := range d.bills {
		if sel.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// Sortable column keys accepted by SortBills.
var sortKeys = map[string]func(a, b ResolvedBill) int{
	"state":            func(a, b ResolvedBill) int { return strings.Compare(a.State, b.State) },
	"bill_number":      func(a, b ResolvedBill) int { return strings.Compare(a.BillNumber, b.BillNumber) },
	"title":            func(a, b ResolvedBill) int { return strings.Compare(a.Title, b.Title) },
	"dem_sponsors":     func(a, b ResolvedBill) int { return a.DemSponsors - b.DemSponsors },
	"rep_sponsors":     func(a, b ResolvedBill) int { return a.RepSponsors - b.RepSponsors },
	"start_date":       func(a, b ResolvedBill) int { return compareTime(a.StartDate, b.StartDate) },
	"end_date":         func(a, b ResolvedBill) int { return compareTime(a.EndDate, b.EndDate) },
	"last_action_date": func(a, b ResolvedBill) int { return compareTime(a.LastActionDate, b.LastActionDate) },
	"completion":       func(a, b ResolvedBill) int { return strings.Compare(a.CompletionLabel(), b.CompletionLabel()) },
	"last_action":      func(a, b ResolvedBill) int { return strings.Compare(a.LastAction, b.LastAction) },
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// SortKeyValid reports whether key names a sortable explorer column.
func SortKeyValid(key string) bool {
	_, ok := sortKeys[key]
	return ok
}

// SortBills orders a copy of the slice. An empty or unknown key applies the
// explorer default: (state, start_date) ascending. desc flips the order.
func SortBills(items []ResolvedBill, key string, desc bool) []ResolvedBill {
	out := make([]ResolvedBill, len(items))
	copy(out, items)

	cmp, ok := sortKeys[key]
	if !ok {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].State != out[j].State {
				return out[i].State < out[j].State
			}
			return out[i].StartDate.Before(out[j].StartDate)
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}
