package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
	"github.com/SEP491/FitBridge-Web-sub001/internal/validator"
)

// OrderDetailUsecase owns the single focused order. Every successful mutation
// updates the focused copy and the matching list row through the same
// ApplyTransition value, so the two copies cannot diverge. Nothing is written
// locally before the server confirms.
type OrderDetailUsecase struct {
	orders repo.OrderRepository
	list   *OrderListUsecase

	mu      sync.Mutex
	focused *model.Order
	busy    bool
}

func NewOrderDetailUsecase(orders repo.OrderRepository, list *OrderListUsecase) *OrderDetailUsecase {
	return &OrderDetailUsecase{orders: orders, list: list}
}

// DetailView is the focused order plus the controls valid for its status.
type DetailView struct {
	Order          model.Order         `json:"order"`
	Actions        []model.OrderAction `json:"actions"`
	AllowedTargets []model.OrderStatus `json:"allowedTargets"`
	CanDispatch    bool                `json:"canDispatch"`
	DefaultRemarks string              `json:"defaultRemarks"`
}

func viewOf(o model.Order) DetailView {
	return DetailView{
		Order:          o,
		Actions:        model.ActionsFor(o.CurrentStatus),
		AllowedTargets: model.AllowedTargets(o.CurrentStatus),
		CanDispatch:    model.CanDispatch(o.CurrentStatus),
		DefaultRemarks: o.ShippingDetail.Note,
	}
}

// Select focuses an order. The already-loaded list row is reused; fetching
// happens only for orders outside the current page (deep links).
func (u *OrderDetailUsecase) Select(ctx context.Context, id string) (DetailView, error) {
	order, ok := u.list.Row(id)
	if !ok {
		fetched, err := u.orders.Get(ctx, id)
		if err != nil {
			var nf *repo.NotFoundError
			if errors.As(err, &nf) {
				u.list.DropRow(id)
			}
			return DetailView{}, mapError(err)
		}
		order = fetched
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.focused = &order
	return viewOf(order), nil
}

func (u *OrderDetailUsecase) View() (DetailView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.focused == nil {
		return DetailView{}, NewHTTPError(http.StatusNotFound, "no order selected")
	}
	return viewOf(*u.focused), nil
}

// Confirm runs the "confirm for processing" step: Created moves to Pending,
// Pending moves to Processing. The target comes from the transition table,
// never from the caller.
func (u *OrderDetailUsecase) Confirm(ctx context.Context) (DetailView, error) {
	snapshot, err := u.beginMutation()
	if err != nil {
		return DetailView{}, err
	}

	target, ok := model.ConfirmTarget(snapshot.CurrentStatus)
	if !ok {
		u.endMutation()
		return DetailView{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("order in status %s cannot be confirmed", snapshot.CurrentStatus))
	}

	return u.applyStatusMutation(snapshot, target, func() error {
		return u.orders.UpdateStatus(ctx, snapshot.ID, repo.StatusUpdate{Status: target})
	})
}

// UpdateStatus runs an explicit operator-named transition (Assigning or
// Shipping into Finished/Cancelled). Moves the table forbids are rejected
// before any network call.
func (u *OrderDetailUsecase) UpdateStatus(ctx context.Context, target model.OrderStatus, description string) (DetailView, error) {
	snapshot, err := u.beginMutation()
	if err != nil {
		return DetailView{}, err
	}

	if !target.IsClientAssignable() {
		u.endMutation()
		return DetailView{}, mapError(validator.ErrInvalidStatus)
	}
	if !model.CanTransition(snapshot.CurrentStatus, target) {
		u.endMutation()
		return DetailView{}, mapError(&model.InvalidTransitionError{From: snapshot.CurrentStatus, To: target})
	}

	return u.applyStatusMutation(snapshot, target, func() error {
		return u.orders.UpdateStatus(ctx, snapshot.ID, repo.StatusUpdate{Status: target, Description: description})
	})
}

// Cancel moves the focused order to Cancelled. The action is only offered for
// statuses the table allows to cancel, so a terminal order can never reach
// this path twice.
func (u *OrderDetailUsecase) Cancel(ctx context.Context) (DetailView, error) {
	snapshot, err := u.beginMutation()
	if err != nil {
		return DetailView{}, err
	}

	if !model.CanTransition(snapshot.CurrentStatus, model.OrderStatusCancelled) {
		u.endMutation()
		return DetailView{}, mapError(&model.InvalidTransitionError{From: snapshot.CurrentStatus, To: model.OrderStatusCancelled})
	}

	return u.applyStatusMutation(snapshot, model.OrderStatusCancelled, func() error {
		return u.orders.Cancel(ctx, snapshot.ID)
	})
}

// DispatchShipping creates a courier shipment for an order in Processing.
// On success the list is fully reloaded with its current query: the courier
// side may advance the status through logic this client does not compute, so
// a row patch would guess.
func (u *OrderDetailUsecase) DispatchShipping(ctx context.Context, remarks string) (DetailView, error) {
	snapshot, err := u.beginMutation()
	if err != nil {
		return DetailView{}, err
	}

	if !model.CanDispatch(snapshot.CurrentStatus) {
		u.endMutation()
		return DetailView{}, mapError(&repo.ConflictError{})
	}
	if err := validator.ValidateRemarks(remarks); err != nil {
		u.endMutation()
		return DetailView{}, mapError(err)
	}

	if err := u.orders.CreateShippingOrder(ctx, repo.ShippingOrderInput{OrderID: snapshot.ID, Remarks: remarks}); err != nil {
		u.failMutation(snapshot.ID, err)
		return DetailView{}, mapError(err)
	}

	// Refresh the page, then re-focus from the server's view of the order.
	if _, err := u.list.Reload(ctx); err != nil {
		// Dispatch already succeeded; the stale focus stays until the
		// operator reloads the list.
		u.endMutation()
		return DetailView{}, err
	}

	refreshed, ok := u.list.Row(snapshot.ID)
	if !ok {
		fetched, err := u.orders.Get(ctx, snapshot.ID)
		if err != nil {
			u.failMutation(snapshot.ID, err)
			return DetailView{}, mapError(err)
		}
		refreshed = fetched
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.focused = &refreshed
	u.busy = false
	return viewOf(refreshed), nil
}

// beginMutation takes the in-flight slot and returns a snapshot of the
// focused order. Only one mutation per session can be in flight, mirroring
// the UI removing the trigger control while a request runs.
func (u *OrderDetailUsecase) beginMutation() (model.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.focused == nil {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "no order selected")
	}
	if u.busy {
		return model.Order{}, NewHTTPError(http.StatusConflict, "action already in progress")
	}
	u.busy = true
	return *u.focused, nil
}

func (u *OrderDetailUsecase) endMutation() {
	u.mu.Lock()
	u.busy = false
	u.mu.Unlock()
}

// failMutation releases the in-flight slot and keeps the pre-mutation
// snapshot, except when the server no longer knows the order at all: then the
// stale focus and list row are dropped.
func (u *OrderDetailUsecase) failMutation(id string, err error) {
	var nf *repo.NotFoundError
	if errors.As(err, &nf) {
		u.list.DropRow(id)
		u.mu.Lock()
		if u.focused != nil && u.focused.ID == id {
			u.focused = nil
		}
		u.busy = false
		u.mu.Unlock()
		return
	}
	u.endMutation()
}

// applyStatusMutation runs the network call and, only after the server
// confirms, merges {status, updatedAt} into both in-memory copies.
func (u *OrderDetailUsecase) applyStatusMutation(snapshot model.Order, target model.OrderStatus, call func() error) (DetailView, error) {
	if err := call(); err != nil {
		u.failMutation(snapshot.ID, err)
		return DetailView{}, mapError(err)
	}

	updated := snapshot.ApplyTransition(target, time.Now())
	u.list.PatchRow(updated)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.focused = &updated
	u.busy = false
	return viewOf(updated), nil
}
