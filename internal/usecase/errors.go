package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
	"github.com/SEP491/FitBridge-Web-sub001/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// mapError translates repository and validation failures into the envelope
// the handlers surface. Server-side rejection reasons pass through verbatim.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}

	var ve *repo.ValidationError
	if errors.As(err, &ve) {
		return NewHTTPError(ve.Status, ve.Message)
	}
	var nf *repo.NotFoundError
	if errors.As(err, &nf) {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	var ce *repo.ConflictError
	if errors.As(err, &ce) {
		return NewHTTPError(http.StatusConflict, ce.Error())
	}
	var te *repo.TransportError
	if errors.As(err, &te) {
		return NewHTTPError(http.StatusBadGateway, "order service unavailable")
	}
	var it *model.InvalidTransitionError
	if errors.As(err, &it) {
		return NewHTTPError(http.StatusBadRequest, it.Error())
	}

	switch {
	case errors.Is(err, validator.ErrInvalidPage),
		errors.Is(err, validator.ErrInvalidSize),
		errors.Is(err, validator.ErrInvalidStatus),
		errors.Is(err, validator.ErrRemarkTooLong):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
