package model

import "time"

// Order is the aggregate the back office works on. It is created by the
// storefront checkout flow and only ever advanced toward a terminal status
// here; the server stays authoritative for every field.
type Order struct {
	ID             string         `json:"id"`
	CurrentStatus  OrderStatus    `json:"currentStatus"`
	TotalAmount    int64          `json:"totalAmount"` // VND, no fractional unit
	ShippingFee    int64          `json:"shippingFee"`
	CouponID       *string        `json:"couponId,omitempty"`
	CheckoutURL    *string        `json:"checkoutUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	OrderItems     []OrderItem    `json:"orderItems"`
	ShippingDetail ShippingDetail `json:"shippingDetail"`
}

// PaidByBankTransfer distinguishes bank-transfer orders (which carry a
// checkout URL) from cash-on-delivery ones.
func (o Order) PaidByBankTransfer() bool {
	return o.CheckoutURL != nil && *o.CheckoutURL != ""
}

// ApplyTransition returns a copy of the order with the server-confirmed
// status merged in. Every in-memory copy of an order (list row, detail focus)
// is reconciled through this one function after a successful mutation.
func (o Order) ApplyTransition(status OrderStatus, updatedAt time.Time) Order {
	o.CurrentStatus = status
	o.UpdatedAt = updatedAt
	return o
}
