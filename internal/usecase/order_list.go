package usecase

import (
	"context"
	"sync"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
	"github.com/SEP491/FitBridge-Web-sub001/internal/validator"
)

// OrderListUsecase owns one operator's view of the order collection: the
// active query, the loaded page and the page-local statistics. A successful
// child mutation patches the matching row in place; the page is refetched
// only after a shipping dispatch, where the server may have moved the order
// on its own.
type OrderListUsecase struct {
	orders repo.OrderRepository

	mu         sync.Mutex
	query      model.ListQuery
	rows       []model.Order
	total      int64
	totalPages int
	stats      model.ListStats
}

func NewOrderListUsecase(orders repo.OrderRepository, defaultPageSize int) *OrderListUsecase {
	return &OrderListUsecase{
		orders: orders,
		query:  model.ListQuery{Page: 1, Size: defaultPageSize},
	}
}

// ListView is what the UI renders: one page plus its page-local stats.
// PageStats covers only the rows in Items, never the whole collection.
type ListView struct {
	Items      []model.Order   `json:"items"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"totalPages"`
	PageStats  model.ListStats `json:"pageStats"`
	Query      model.ListQuery `json:"query"`
}

// Load fetches the page described by q and replaces the current view.
func (u *OrderListUsecase) Load(ctx context.Context, q model.ListQuery) (ListView, error) {
	if err := validator.ValidateListQuery(q); err != nil {
		return ListView{}, mapError(err)
	}

	page, err := u.orders.List(ctx, q)
	if err != nil {
		return ListView{}, mapError(err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.query = q
	u.rows = page.Items
	u.total = page.Total
	u.totalPages = page.TotalPages
	u.stats = model.ComputeListStats(page.Items)
	return u.viewLocked(), nil
}

// ChangeFilters applies a new status/search filter. Pagination always resets
// to page 1; the page size is kept.
func (u *OrderListUsecase) ChangeFilters(ctx context.Context, status *model.OrderStatus, search string) (ListView, error) {
	u.mu.Lock()
	q := u.query.WithFilters(status, search)
	u.mu.Unlock()
	return u.Load(ctx, q)
}

// Reload re-runs the last query unchanged.
func (u *OrderListUsecase) Reload(ctx context.Context) (ListView, error) {
	u.mu.Lock()
	q := u.query
	u.mu.Unlock()
	return u.Load(ctx, q)
}

func (u *OrderListUsecase) View() ListView {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.viewLocked()
}

func (u *OrderListUsecase) viewLocked() ListView {
	items := make([]model.Order, len(u.rows))
	copy(items, u.rows)
	return ListView{
		Items:      items,
		Total:      u.total,
		TotalPages: u.totalPages,
		PageStats:  u.stats,
		Query:      u.query,
	}
}

// Row hands an already-loaded row to the detail controller without a refetch.
func (u *OrderListUsecase) Row(id string) (model.Order, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, o := range u.rows {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// PatchRow replaces the matching row in place after a confirmed mutation.
// Rows from other pages are not on screen, so a miss is a no-op.
func (u *OrderListUsecase) PatchRow(order model.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.rows {
		if u.rows[i].ID == order.ID {
			u.rows[i] = order
			u.stats = model.ComputeListStats(u.rows)
			return
		}
	}
}

// DropRow removes a row the server no longer knows about.
func (u *OrderListUsecase) DropRow(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.rows {
		if u.rows[i].ID == id {
			u.rows = append(u.rows[:i], u.rows[i+1:]...)
			u.stats = model.ComputeListStats(u.rows)
			return
		}
	}
}

// Query returns the active query (page, size, filters).
func (u *OrderListUsecase) Query() model.ListQuery {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.query
}
