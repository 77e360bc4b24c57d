// Package search provides the in-memory full-text index over the loaded
// bills, used by the dashboard's free-text query box.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

// billDoc is the indexed projection of a bill. Only text a user would
// plausibly type into the search box is included.
type billDoc struct {
	State      string `json:"state"`
	BillNumber string `json:"bill_number"`
	Title      string `json:"title"`
	LastAction string `json:"last_action"`
}

// Index wraps a memory-only bleve index keyed by the bill natural key.
// It is built once per dataset and is safe for concurrent searches.
type Index struct {
	idx  bleve.Index
	size int
}

// Build indexes every bill. The index lives entirely in memory and is
// rebuilt on each process start together with the dataset.
func Build(items []bills.ResolvedBill) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("search: create index: %w", err)
	}
	for _, b := range items {
		doc := billDoc{
			State:      b.State,
			BillNumber: b.BillNumber,
			Title:      b.Title,
			LastAction: b.LastAction,
		}
		if err := idx.Index(b.Key(), doc); err != nil {
			return nil, fmt.Errorf("search: index %s: %w", b.Key(), err)
		}
	}
	return &Index{idx: idx, size: len(items)}, nil
}

// Matches runs a query-string search and returns the set of matching bill
// keys. An empty query matches everything, reported as a nil set so callers
// can skip the membership test.
func (s *Index) Matches(q string) (map[string]struct{}, error) {
	if q == "" {
		return nil, nil
	}
	query := bleve.NewQueryStringQuery(q)
	req := bleve.NewSearchRequestOptions(query, s.size+1, 0, false)
	res, err := s.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	keys := make(map[string]struct{}, len(res.Hits))
	for _, hit := range res.Hits {
		keys[hit.ID] = struct{}{}
	}
	return keys, nil
}

// Size is the number of indexed bills.
func (s *Index) Size() int { return s.size }
