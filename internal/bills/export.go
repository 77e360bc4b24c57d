package bills

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportFilename is the attachment name served for CSV downloads.
const ExportFilename = "filtered_bills.csv"

// exportColumns are the source columns followed by the derived ones.
var exportColumns = []string{
	"state", "bill_number", "title",
	"dem_sponsors", "rep_sponsors",
	"session_start", "session_end",
	"last_action_date", "completed", "last_action",
	"start_date", "end_date",
	"start_estimated", "end_estimated",
	"completion_label",
}

// WriteCSV writes the bills as CSV, one row per bill in the order given.
// The completed column uses 1/0 so the output loads back through the
// summary reader unchanged.
func WriteCSV(w io.Writer, items []ResolvedBill) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, b := range items {
		completed := "0"
		if b.Completed {
			completed = "1"
		}
		lastAction := ""
		if !b.LastActionDate.IsZero() {
			lastAction = b.LastActionDate.Format("2006-01-02")
		}
		row := []string{
			b.State, b.BillNumber, b.Title,
			strconv.Itoa(b.DemSponsors), strconv.Itoa(b.RepSponsors),
			strconv.Itoa(b.SessionStart), strconv.Itoa(b.SessionEnd),
			lastAction, completed, b.LastAction,
			b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"),
			strconv.FormatBool(b.StartSource.Estimated()), strconv.FormatBool(b.EndSource.Estimated()),
			b.CompletionLabel(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row %s: %w", b.Key(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
