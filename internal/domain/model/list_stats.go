package model

// ListStats summarizes the rows of one loaded page. Counts and revenue cover
// that page only, not the whole collection; callers must not present them as
// global totals.
type ListStats struct {
	CountByStatus   map[OrderStatus]int `json:"countByStatus"`
	FinishedRevenue int64               `json:"finishedRevenue"`
}

// ComputeListStats aggregates the given rows. Revenue is summed over Finished
// orders only.
func ComputeListStats(orders []Order) ListStats {
	stats := ListStats{CountByStatus: map[OrderStatus]int{}}
	for _, o := range orders {
		stats.CountByStatus[o.CurrentStatus]++
		if o.CurrentStatus == OrderStatusFinished {
			stats.FinishedRevenue += o.TotalAmount
		}
	}
	return stats
}
