package server

import (
	"strconv"
	"time"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

// Palette shared by the waffle, the timeline, and the sponsor chart.
const (
	colorDem          = "#1f77b4"
	colorRep          = "#d62728"
	colorCompleted    = "#2ca02c"
	colorNotCompleted = "#d62728"
)

const waffleRows = 10

// WaffleCell is one sponsor square.
type WaffleCell struct {
	Color string
	Title string
}

// Waffle is the sponsor-party grid. Cells are emitted in party order
// (Democrats first) and the grid fills column by column, so each column
// holds waffleRows cells before the next column starts.
type Waffle struct {
	Cells     []WaffleCell
	Rows      int
	DemLegend string
	RepLegend string
	DemColor  string
	RepColor  string
}

// Empty reports whether there is nothing to draw.
func (w Waffle) Empty() bool { return len(w.Cells) == 0 }

// BuildWaffle turns the summary's sponsor totals into one cell per sponsor.
func BuildWaffle(s bills.Summary) Waffle {
	w := Waffle{
		Rows:      waffleRows,
		DemLegend: "Democrats (" + strconv.Itoa(s.DemSponsors) + ")",
		RepLegend: "Republicans (" + strconv.Itoa(s.RepSponsors) + ")",
		DemColor:  colorDem,
		RepColor:  colorRep,
	}
	for i := 0; i < s.DemSponsors; i++ {
		w.Cells = append(w.Cells, WaffleCell{Color: colorDem, Title: "Democrat sponsor"})
	}
	for i := 0; i < s.RepSponsors; i++ {
		w.Cells = append(w.Cells, WaffleCell{Color: colorRep, Title: "Republican sponsor"})
	}
	return w
}

// TimelineRow is one bill bar positioned inside the window, as CSS
// percentages of the full span.
type TimelineRow struct {
	Key       string
	Label     string
	LeftPct   float64
	WidthPct  float64
	Color     string
	Start     string
	End       string
	Estimated bool
}

// Timeline is the filtered bills laid over the common date window, first
// dataset row at the top.
type Timeline struct {
	Rows     []TimelineRow
	WinStart string
	WinEnd   string
}

func (t Timeline) Empty() bool { return len(t.Rows) == 0 }

// BuildTimeline computes the window as [earliest start, latest end] over the
// given bills and positions each bar inside it. Bars too narrow to see get
// a minimum width.
func BuildTimeline(items []bills.ResolvedBill) Timeline {
	if len(items) == 0 {
		return Timeline{}
	}

	winStart, winEnd := items[0].StartDate, items[0].EndDate
	for _, b := range items[1:] {
		if b.StartDate.Before(winStart) {
			winStart = b.StartDate
		}
		if b.EndDate.After(winEnd) {
			winEnd = b.EndDate
		}
	}
	span := float64(winEnd.Sub(winStart))
	if span <= 0 {
		span = float64(24 * time.Hour)
	}

	tl := Timeline{
		WinStart: winStart.Format("2006-01-02"),
		WinEnd:   winEnd.Format("2006-01-02"),
	}
	for _, b := range items {
		left := float64(b.StartDate.Sub(winStart)) / span * 100
		width := float64(b.EndDate.Sub(b.StartDate)) / span * 100
		if width < 0 {
			width = 0
		}
		if width < 0.3 {
			width = 0.3
		}
		color := colorNotCompleted
		if b.Completed {
			color = colorCompleted
		}
		tl.Rows = append(tl.Rows, TimelineRow{
			Key:       b.Key(),
			Label:     b.Label(),
			LeftPct:   left,
			WidthPct:  width,
			Color:     color,
			Start:     b.StartDate.Format("2006-01-02"),
			End:       b.EndDate.Format("2006-01-02"),
			Estimated: b.StartSource.Estimated() || b.EndSource.Estimated(),
		})
	}
	return tl
}

// TableRow is one explorer table row with display-ready fields.
type TableRow struct {
	State           string
	BillNumber      string
	Title           string
	DemSponsors     int
	RepSponsors     int
	Start           string
	StartEstimated  bool
	End             string
	EndEstimated    bool
	LastActionDate  string
	CompletionLabel string
	Completed       bool
	LastAction      string
}

// BuildTable formats bills for the explorer table, preserving input order.
func BuildTable(items []bills.ResolvedBill) []TableRow {
	rows := make([]TableRow, 0, len(items))
	for _, b := range items {
		lastAction := ""
		if !b.LastActionDate.IsZero() {
			lastAction = b.LastActionDate.Format("2006-01-02")
		}
		rows = append(rows, TableRow{
			State:           b.State,
			BillNumber:      b.BillNumber,
			Title:           b.Title,
			DemSponsors:     b.DemSponsors,
			RepSponsors:     b.RepSponsors,
			Start:           b.StartDate.Format("2006-01-02"),
			StartEstimated:  b.StartSource.Estimated(),
			End:             b.EndDate.Format("2006-01-02"),
			EndEstimated:    b.EndSource.Estimated(),
			LastActionDate:  lastAction,
			CompletionLabel: b.CompletionLabel(),
			Completed:       b.Completed,
			LastAction:      b.LastAction,
		})
	}
	return rows
}
