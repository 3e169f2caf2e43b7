package validator

import (
	"errors"
	"strings"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
)

var (
	ErrInvalidPage   = errors.New("invalid page")
	ErrInvalidSize   = errors.New("invalid size")
	ErrInvalidStatus = errors.New("invalid status")
	ErrRemarkTooLong = errors.New("remarks too long")
)

const maxRemarkLen = 500

// ValidateListQuery checks pagination bounds before any network call.
func ValidateListQuery(q model.ListQuery) error {
	if q.Page < 1 {
		return ErrInvalidPage
	}
	if q.Size < 1 || q.Size > 100 {
		return ErrInvalidSize
	}
	if q.Status != nil && !q.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// ParseStatusFilter turns an optional query-string value into a status
// filter. Empty means no constraint.
func ParseStatusFilter(raw string) (*model.OrderStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	s := model.OrderStatus(raw)
	if !s.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &s, nil
}

// ParseTargetStatus validates a status named by the operator as a transition
// target. Display-only courier sub-states are rejected here, before the
// transition table is even consulted.
func ParseTargetStatus(raw string) (model.OrderStatus, error) {
	s := model.OrderStatus(strings.TrimSpace(raw))
	if !s.IsClientAssignable() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func ValidateRemarks(remarks string) error {
	if len(remarks) > maxRemarkLen {
		return ErrRemarkTooLong
	}
	return nil
}
