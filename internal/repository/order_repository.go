package repository

import (
	"context"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
)

// StatusUpdate asks the order service for a transition. The server is
// authoritative on whether it is legal.
type StatusUpdate struct {
	Status      model.OrderStatus
	Description string
}

// ShippingOrderInput requests a courier shipment for an order.
type ShippingOrderInput struct {
	OrderID string
	Remarks string
}

// OrderRepository is the only path to the order service. Implementations hold
// no state beyond their connection config.
type OrderRepository interface {
	List(ctx context.Context, q model.ListQuery) (model.OrderPage, error)
	Get(ctx context.Context, id string) (model.Order, error)
	UpdateStatus(ctx context.Context, id string, in StatusUpdate) error
	Cancel(ctx context.Context, id string) error
	CreateShippingOrder(ctx context.Context, in ShippingOrderInput) error
}
