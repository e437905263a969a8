package services

// CalcWinRate returns the percentage of closed quotations that were won,
// rounded to 2 places. With no closed quotations the rate is 0.
func CalcWinRate(won, lost int) float64 {
	closed := won + lost
	if closed == 0 {
		return 0
	}
	return Round2(float64(won) / float64(closed) * 100)
}

// PipelineEntry is the slice of a quotation that pipeline reporting needs.
type PipelineEntry struct {
	Status       Status
	TotalRevenue float64
}

// CalcPipelineValue sums the total revenue of quotations whose status is
// in the caller-supplied open-status set.
func CalcPipelineValue(entries []PipelineEntry, openStatuses []Status) float64 {
	open := make(map[Status]bool, len(openStatuses))
	for _, s := range openStatuses {
		open[s] = true
	}

	var total float64
	for _, e := range entries {
		if open[e.Status] {
			total += e.TotalRevenue
		}
	}
	return total
}
