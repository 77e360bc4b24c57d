package server

import (
	"net/http"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/labstack/echo/v4"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

// handleSponsorChart renders the party sponsor totals for the current
// filtered view as a PNG bar chart, for embedding outside the dashboard.
func (s *Server) handleSponsorChart(c echo.Context) error {
	items, _, err := s.selectedBills(c)
	if err != nil {
		return err
	}
	summary := bills.Summarize(items)
	if summary.SponsorTotal() == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no sponsor counts for the current filters")
	}

	demColor := drawing.ColorFromHex("1f77b4")
	repColor := drawing.ColorFromHex("d62728")
	bar := chart.BarChart{
		Title:      "Sponsors by Party",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      480,
		Height:     360,
		BarWidth:   90,
		Bars: []chart.Value{
			{
				Value: float64(summary.DemSponsors),
				Label: "Democrats",
				Style: chart.Style{FillColor: demColor, StrokeColor: demColor},
			},
			{
				Value: float64(summary.RepSponsors),
				Label: "Republicans",
				Style: chart.Style{FillColor: repColor, StrokeColor: repColor},
			},
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/png")
	c.Response().WriteHeader(http.StatusOK)
	return bar.Render(chart.PNG, c.Response())
}
