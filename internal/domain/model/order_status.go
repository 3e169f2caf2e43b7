package model

import "fmt"

type OrderStatus string

// Statuses an operator can move an order into (or out of).
const (
	OrderStatusCreated    OrderStatus = "Created"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusAssigning  OrderStatus = "Assigning"
	OrderStatusShipping   OrderStatus = "Shipping"
	OrderStatusFinished   OrderStatus = "Finished"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Courier-reported sub-states. They show up in status history but are never
// the target of a client-initiated transition.
const (
	OrderStatusAccepted            OrderStatus = "Accepted"
	OrderStatusArrived             OrderStatus = "Arrived"
	OrderStatusInReturning         OrderStatus = "InReturning"
	OrderStatusReturned            OrderStatus = "Returned"
	OrderStatusCustomerNotReceived OrderStatus = "CustomerNotReceived"
)

var clientStatuses = map[OrderStatus]bool{
	OrderStatusCreated:    true,
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusAssigning:  true,
	OrderStatusShipping:   true,
	OrderStatusFinished:   true,
	OrderStatusCancelled:  true,
}

var displayStatuses = map[OrderStatus]bool{
	OrderStatusAccepted:            true,
	OrderStatusArrived:             true,
	OrderStatusInReturning:         true,
	OrderStatusReturned:            true,
	OrderStatusCustomerNotReceived: true,
}

func (s OrderStatus) IsValid() bool {
	return clientStatuses[s] || displayStatuses[s]
}

// IsClientAssignable reports whether an operator may name s as a transition
// target. Courier sub-states are display-only.
func (s OrderStatus) IsClientAssignable() bool {
	return clientStatuses[s]
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFinished || s == OrderStatusCancelled
}

// allowedTransitions is the single source of truth for operator-initiated
// moves. Processing is intentionally absent: it only ever advances through a
// shipping dispatch, and the courier side decides the resulting status.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:   {OrderStatusPending, OrderStatusCancelled},
	OrderStatusPending:   {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusAssigning: {OrderStatusFinished, OrderStatusCancelled},
	OrderStatusShipping:  {OrderStatusFinished, OrderStatusCancelled},
}

// AllowedTargets returns the statuses an operator may move from into. The
// returned slice is a copy.
func AllowedTargets(from OrderStatus) []OrderStatus {
	targets := allowedTransitions[from]
	out := make([]OrderStatus, len(targets))
	copy(out, targets)
	return out
}

func CanTransition(from, to OrderStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ConfirmTarget is the "confirm for processing" step: Created goes to Pending,
// Pending goes to Processing. ok is false for every other status.
func ConfirmTarget(from OrderStatus) (OrderStatus, bool) {
	switch from {
	case OrderStatusCreated:
		return OrderStatusPending, true
	case OrderStatusPending:
		return OrderStatusProcessing, true
	default:
		return "", false
	}
}

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// OrderAction is a control the UI may offer for an order.
type OrderAction string

const (
	ActionConfirm      OrderAction = "confirm"       // Created→Pending, Pending→Processing
	ActionCancel       OrderAction = "cancel"        // any non-terminal, non-Processing status
	ActionUpdateStatus OrderAction = "update_status" // Assigning/Shipping → Finished/Cancelled
	ActionDispatch     OrderAction = "dispatch"      // create shipping order, Processing only
)

// ActionsFor decides which controls are offered for a status. Terminal
// statuses get none, so a finished or cancelled order can never be touched
// again from this layer.
func ActionsFor(s OrderStatus) []OrderAction {
	switch s {
	case OrderStatusCreated, OrderStatusPending:
		return []OrderAction{ActionConfirm, ActionCancel}
	case OrderStatusProcessing:
		return []OrderAction{ActionDispatch}
	case OrderStatusAssigning, OrderStatusShipping:
		return []OrderAction{ActionUpdateStatus, ActionCancel}
	default:
		return []OrderAction{}
	}
}

func CanDispatch(s OrderStatus) bool {
	return s == OrderStatusProcessing
}
