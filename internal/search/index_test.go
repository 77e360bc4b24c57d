package search

import (
	"testing"

	"github.com/mohammad-safakhou/billtracker/internal/bills"
)

func buildIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Build([]bills.ResolvedBill{
		{Bill: bills.Bill{State: "MA", BillNumber: "H1234", Title: "Digital electronics right to repair", LastAction: "Referred to committee"}},
		{Bill: bills.Bill{State: "RI", BillNumber: "H5169", Title: "Consumer right to repair", LastAction: "Introduced"}},
		{Bill: bills.Bill{State: "NY", BillNumber: "S0402", Title: "Farm equipment fair service", LastAction: "Held for consideration"}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return idx
}

func TestMatchesByTitle(t *testing.T) {
	idx := buildIndex(t)

	keys, err := idx.Matches("farm")
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 match, got %d", len(keys))
	}
	if _, ok := keys["NY_S0402"]; !ok {
		t.Fatalf("expected NY bill, got %v", keys)
	}
}

func TestMatchesByBillNumber(t *testing.T) {
	idx := buildIndex(t)

	keys, err := idx.Matches("H5169")
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if _, ok := keys["RI_H5169"]; !ok {
		t.Fatalf("expected RI bill, got %v", keys)
	}
}

func TestMatchesEmptyQuery(t *testing.T) {
	idx := buildIndex(t)

	keys, err := idx.Matches("")
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if keys != nil {
		t.Fatalf("empty query should report nil (match everything), got %v", keys)
	}
}

func TestMatchesNoHits(t *testing.T) {
	idx := buildIndex(t)

	keys, err := idx.Matches("xylophone")
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no matches, got %v", keys)
	}
}

func TestSize(t *testing.T) {
	idx := buildIndex(t)
	if idx.Size() != 3 {
		t.Fatalf("Size() got %d, want 3", idx.Size())
	}
}
