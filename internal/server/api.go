package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

// billJSON is the API projection of a resolved bill.
type billJSON struct {
	State           string `json:"state"`
	BillNumber      string `json:"bill_number"`
	Title           string `json:"title"`
	DemSponsors     int    `json:"dem_sponsors"`
	RepSponsors     int    `json:"rep_sponsors"`
	SessionStart    int    `json:"session_start,omitempty"`
	SessionEnd      int    `json:"session_end,omitempty"`
	LastActionDate  string `json:"last_action_date,omitempty"`
	LastAction      string `json:"last_action,omitempty"`
	Completed       bool   `json:"completed"`
	CompletionLabel string `json:"completion_label"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	StartSource     string `json:"start_source"`
	EndSource       string `json:"end_source"`
	StartEstimated  bool   `json:"start_estimated"`
	EndEstimated    bool   `json:"end_estimated"`
}

type summaryJSON struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	NotCompleted int `json:"not_completed"`
	DemSponsors  int `json:"dem_sponsors"`
	RepSponsors  int `json:"rep_sponsors"`
}

func toBillJSON(b bills.ResolvedBill) billJSON {
	lastAction := ""
	if !b.LastActionDate.IsZero() {
		lastAction = b.LastActionDate.Format("2006-01-02")
	}
	return billJSON{
		State:           b.State,
		BillNumber:      b.BillNumber,
		Title:           b.Title,
		DemSponsors:     b.DemSponsors,
		RepSponsors:     b.RepSponsors,
		SessionStart:    b.SessionStart,
		SessionEnd:      b.SessionEnd,
		LastActionDate:  lastAction,
		LastAction:      b.LastAction,
		Completed:       b.Completed,
		CompletionLabel: b.CompletionLabel(),
		StartDate:       b.StartDate.Format("2006-01-02"),
		EndDate:         b.EndDate.Format("2006-01-02"),
		StartSource:     string(b.StartSource),
		EndSource:       string(b.EndSource),
		StartEstimated:  b.StartSource.Estimated(),
		EndEstimated:    b.EndSource.Estimated(),
	}
}

// handleAPIBills returns the filtered view as JSON, same params as the page.
func (s *Server) handleAPIBills(c echo.Context) error {
	items, _, err := s.selectedBills(c)
	if err != nil {
		return err
	}
	out := make([]billJSON, 0, len(items))
	for _, b := range items {
		out = append(out, toBillJSON(b))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count": len(out),
		"bills": out,
	})
}

// handleAPISummary returns the headline metrics for the filtered view.
func (s *Server) handleAPISummary(c echo.Context) error {
	items, _, err := s.selectedBills(c)
	if err != nil {
		return err
	}
	sum := bills.Summarize(items)
	return c.JSON(http.StatusOK, summaryJSON{
		Total:        sum.Total,
		Completed:    sum.Completed,
		NotCompleted: sum.NotCompleted,
		DemSponsors:  sum.DemSponsors,
		RepSponsors:  sum.RepSponsors,
	})
}
