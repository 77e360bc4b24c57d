package bills

import (
	"log"
	"time"
)

// Resolve derives start/end dates for one bill from the priority chains:
//
//	start: earliest raw event date → Jan 1 of session_start → FallbackStart
//	end:   last_action_date → latest raw event date → Dec 31 of session_end → FallbackEnd
//
// Every tier that fails cascades to the next; the chain always terminates
// in a value, so no bill is ever left unresolved or dropped. The source
// tier is recorded per date so inferred values stay distinguishable from
// observed ones.
func Resolve(b Bill, raw map[string]RawRecord) Resolution {
	var res Resolution

	var eventDates []time.Time
	if rec, ok := raw[b.Key()]; ok {
		eventDates = rec.EventDates()
	}

	switch {
	case len(eventDates) > 0:
		res.StartDate = eventDates[0]
		res.StartSource = SourceEvents
	case b.SessionStart > 0:
		res.StartDate = yearStart(b.SessionStart)
		res.StartSource = SourceSession
	default:
		res.StartDate = FallbackStart
		res.StartSource = SourceFallback
	}

	switch {
	case !b.LastActionDate.IsZero():
		res.EndDate = b.LastActionDate
		res.EndSource = SourceLastAction
	case len(eventDates) > 0:
		res.EndDate = eventDates[len(eventDates)-1]
		res.EndSource = SourceEvents
	case b.SessionEnd > 0:
		res.EndDate = yearEnd(b.SessionEnd)
		res.EndSource = SourceSession
	default:
		res.EndDate = FallbackEnd
		res.EndSource = SourceFallback
	}

	return res
}

// ResolveAll derives dates for every bill, preserving row order. With debug
// enabled each resolution is logged with its source tiers; this replaces
// poking at individual bills in the UI.
func ResolveAll(rows []Bill, raw map[string]RawRecord, logger *log.Logger, debug bool) []ResolvedBill {
	out := make([]ResolvedBill, 0, len(rows))
	for _, b := range rows {
		res := Resolve(b, raw)
		if debug && logger != nil {
			logger.Printf("resolved %s: start=%s (%s) end=%s (%s)",
				b.Key(),
				res.StartDate.Format("2006-01-02"), res.StartSource,
				res.EndDate.Format("2006-01-02"), res.EndSource)
		}
		out = append(out, ResolvedBill{Bill: b, Resolution: res})
	}
	return out
}
