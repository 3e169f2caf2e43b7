package repository

import "fmt"

// TransportError covers network failures and 5xx responses. The operator may
// retry by re-triggering the action; nothing retries automatically.
type TransportError struct {
	Status int // 0 when the request never got a response
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order service unreachable: %v", e.Err)
	}
	return fmt.Sprintf("order service error: status %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is a 4xx rejection. Message is the server's reason verbatim
// and is shown to the operator as-is.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order service rejected request (%d): %s", e.Status, e.Message)
}

// NotFoundError means the order no longer exists server-side; local copies of
// it are stale and must be dropped.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.ID)
}

// ConflictError is returned when a shipping dispatch hits an order that is no
// longer Processing. The control should have been hidden, so seeing this
// means another operator session moved the order first.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "order is not ready for shipping dispatch"
	}
	return e.Message
}
