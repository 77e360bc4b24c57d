package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/billtracker/config"
	"github.com/mohammad-safakhou/billtracker/internal/bills"
	"github.com/mohammad-safakhou/billtracker/internal/search"
)

// exportCMD runs load, resolve, filter, and CSV export without serving.
// Flag defaults mirror the dashboard's default view: the most recent
// session year, all states, both completion labels.
func exportCMD() *cobra.Command {
	var cfgPath string
	var out string
	var query string
	var years []int
	var states []string
	var completion []string

	var export = &cobra.Command{
		Use:   "export",
		Short: "Write the filtered bills as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger := log.New(log.Writer(), "[DATA] ", log.LstdFlags)
			data, err := bills.Load(cfg.Data.SummaryCSV, cfg.Data.RawDir, logger, cfg.General.Debug)
			if err != nil {
				return err
			}

			sel := data.DefaultSelection()
			if len(years) > 0 {
				sel.Years = years
			}
			if len(states) > 0 {
				sel.States = states
			}
			if len(completion) > 0 {
				sel.Completion = completion
			}
			items := data.Filter(sel)

			if query != "" {
				idx, err := search.Build(data.Bills())
				if err != nil {
					return err
				}
				keys, err := idx.Matches(query)
				if err != nil {
					return fmt.Errorf("invalid query %q: %w", query, err)
				}
				kept := items[:0:0]
				for _, b := range items {
					if _, ok := keys[b.Key()]; ok {
						kept = append(kept, b)
					}
				}
				items = kept
			}
			items = bills.SortBills(items, "", false)

			var w io.Writer = os.Stdout
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := bills.WriteCSV(w, items); err != nil {
				return err
			}
			logger.Printf("exported %d bills", len(items))
			return nil
		},
	}
	export.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches . and ./config)")
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	export.Flags().StringVarP(&query, "query", "q", "", "full-text query over title, bill number, and last action")
	export.Flags().IntSliceVar(&years, "year", nil, "session start years to include (default: most recent)")
	export.Flags().StringSliceVar(&states, "state", nil, "state codes to include (default: all)")
	export.Flags().StringSliceVar(&completion, "completion", nil, `completion labels to include (default: both)`)

	return export
}
