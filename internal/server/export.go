package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

// handleExport streams the current filtered view as a CSV attachment. The
// same filter, search, and sort params as the dashboard apply, so the file
// matches what the page shows.
func (s *Server) handleExport(c echo.Context) error {
	items, _, err := s.selectedBills(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := bills.WriteCSV(&buf, items); err != nil {
		return err
	}
	if s.tele != nil {
		s.tele.Exports.Inc()
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", bills.ExportFilename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
