package bills

// Summary holds the headline metrics for a set of bills.
type Summary struct {
	Total        int
	Completed    int
	NotCompleted int
	DemSponsors  int
	RepSponsors  int
}

// Summarize tallies counts and sponsor totals over the given bills.
func Summarize(items []ResolvedBill) Summary {
	var s Summary
	for _, b := range items {
		s.Total++
		if b.Completed {
			s.Completed++
		} else {
			s.NotCompleted++
		}
		s.DemSponsors += b.DemSponsors
		s.RepSponsors += b.RepSponsors
	}
	return s
}

// SponsorTotal is the combined sponsor count across both parties.
func (s Summary) SponsorTotal() int { return s.DemSponsors + s.RepSponsors }
