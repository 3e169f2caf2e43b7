package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeListStats_PageLocal(t *testing.T) {
	orders := []Order{
		{ID: "1", CurrentStatus: OrderStatusFinished, TotalAmount: 300000},
		{ID: "2", CurrentStatus: OrderStatusFinished, TotalAmount: 450000},
		{ID: "3", CurrentStatus: OrderStatusPending, TotalAmount: 120000},
		{ID: "4", CurrentStatus: OrderStatusCancelled, TotalAmount: 990000},
	}

	stats := ComputeListStats(orders)

	assert.Equal(t, 2, stats.CountByStatus[OrderStatusFinished])
	assert.Equal(t, 1, stats.CountByStatus[OrderStatusPending])
	assert.Equal(t, 1, stats.CountByStatus[OrderStatusCancelled])
	assert.Equal(t, 0, stats.CountByStatus[OrderStatusShipping])

	// revenue counts Finished rows only
	assert.Equal(t, int64(750000), stats.FinishedRevenue)
}

func TestComputeListStats_Empty(t *testing.T) {
	stats := ComputeListStats(nil)
	assert.Empty(t, stats.CountByStatus)
	assert.Equal(t, int64(0), stats.FinishedRevenue)
}

func TestListQuery_WithFiltersResetsPage(t *testing.T) {
	q := ListQuery{Page: 4, Size: 10, Search: "whey"}

	status := OrderStatusFinished
	got := q.WithFilters(&status, "")

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Size)
	assert.Equal(t, &status, got.Status)
	assert.Equal(t, "", got.Search)
}
