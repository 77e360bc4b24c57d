package server

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

// option is one entry of a filter multi-select.
type option struct {
	Value    string
	Selected bool
}

// column is one sortable explorer header.
type column struct {
	Key    string
	Label  string
	Href   string
	Active bool
	Arrow  string
}

var columnDefs = []struct{ key, label string }{
	{"state", "State"},
	{"bill_number", "Bill"},
	{"title", "Title"},
	{"dem_sponsors", "Dem"},
	{"rep_sponsors", "Rep"},
	{"start_date", "Start"},
	{"end_date", "End"},
	{"last_action_date", "Last Action Date"},
	{"completion", "Completion"},
	{"last_action", "Last Action"},
}

// parseSelection reads the filter params. A bare GET with no filter params
// yields the default view; once any dimension param or the apply marker is
// present the params are taken literally, so a cleared multi-select really
// means "nothing selected".
func (s *Server) parseSelection(c echo.Context) bills.Selection {
	qp := c.QueryParams()
	applied := qp.Get("apply") == "1" ||
		len(qp["year"]) > 0 || len(qp["state"]) > 0 || len(qp["completion"]) > 0
	if !applied {
		return s.data.DefaultSelection()
	}

	var sel bills.Selection
	for _, raw := range qp["year"] {
		if y, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			sel.Years = append(sel.Years, y)
		}
	}
	sel.States = append(sel.States, qp["state"]...)
	sel.Completion = append(sel.Completion, qp["completion"]...)
	return sel
}

// selectedBills applies the filter selection, the search query, and the sort
// order. It is shared by the dashboard, the export, the chart, and the API.
func (s *Server) selectedBills(c echo.Context) ([]bills.ResolvedBill, bills.Selection, error) {
	sel := s.parseSelection(c)
	matched := s.data.Filter(sel)

	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		keys, err := s.search.Matches(q)
		if err != nil {
			return nil, sel, echo.NewHTTPError(http.StatusBadRequest, "invalid search query")
		}
		if s.tele != nil {
			s.tele.Searches.Inc()
		}
		kept := matched[:0:0]
		for _, b := range matched {
			if _, ok := keys[b.Key()]; ok {
				kept = append(kept, b)
			}
		}
		matched = kept
	}

	sortKey := c.QueryParam("sort")
	if sortKey != "" && !bills.SortKeyValid(sortKey) {
		sortKey = ""
	}
	matched = bills.SortBills(matched, sortKey, c.QueryParam("dir") == "desc")
	return matched, sel, nil
}

func (s *Server) handleDashboard(c echo.Context) error {
	items, sel, err := s.selectedBills(c)
	if err != nil {
		return err
	}
	summary := bills.Summarize(items)

	data := map[string]interface{}{
		"Title":             s.cfg.General.Title,
		"LoadedAt":          s.data.LoadedAt().Format("2006-01-02 15:04 MST"),
		"Summary":           summary,
		"Waffle":            BuildWaffle(summary),
		"Timeline":          BuildTimeline(items),
		"Table":             BuildTable(items),
		"YearOptions":       yearOptions(s.data.Years(), sel.Years),
		"StateOptions":      stringOptions(s.data.States(), sel.States),
		"CompletionOptions": stringOptions([]string{bills.LabelCompleted, bills.LabelNotCompleted}, sel.Completion),
		"Query":             strings.TrimSpace(c.QueryParam("q")),
		"Columns":           sortColumns(c.QueryParams(), c.QueryParam("sort"), c.QueryParam("dir") == "desc"),
		"ExportHref":        hrefWithParams("/export.csv", c.QueryParams()),
		"ChartHref":         hrefWithParams("/chart/sponsors.png", c.QueryParams()),
	}
	return renderPage(c, tmplDashboard, data)
}

func renderPage(c echo.Context, tmpl string, data interface{}) error {
	t, err := template.New("page").Parse(tmplBase + tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func yearOptions(all []int, selected []int) []option {
	sel := make(map[int]struct{}, len(selected))
	for _, y := range selected {
		sel[y] = struct{}{}
	}
	opts := make([]option, 0, len(all))
	for _, y := range all {
		_, on := sel[y]
		opts = append(opts, option{Value: strconv.Itoa(y), Selected: on})
	}
	return opts
}

func stringOptions(all []string, selected []string) []option {
	sel := make(map[string]struct{}, len(selected))
	for _, v := range selected {
		sel[v] = struct{}{}
	}
	opts := make([]option, 0, len(all))
	for _, v := range all {
		_, on := sel[v]
		opts = append(opts, option{Value: v, Selected: on})
	}
	return opts
}

// sortColumns builds the header links. Clicking the active column flips the
// direction; clicking any other column sorts ascending by it.
func sortColumns(params url.Values, sortKey string, desc bool) []column {
	cols := make([]column, 0, len(columnDefs))
	for _, def := range columnDefs {
		v := url.Values{}
		for key, vals := range params {
			v[key] = append([]string(nil), vals...)
		}
		v.Set("sort", def.key)
		dir := "asc"
		if def.key == sortKey && !desc {
			dir = "desc"
		}
		v.Set("dir", dir)

		arrow := "▲"
		if desc {
			arrow = "▼"
		}
		cols = append(cols, column{
			Key:    def.key,
			Label:  def.label,
			Href:   "/?" + v.Encode(),
			Active: def.key == sortKey,
			Arrow:  arrow,
		})
	}
	return cols
}

func hrefWithParams(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
