package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SEP491/FitBridge-Web-sub001/internal/middleware"
	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
	"github.com/SEP491/FitBridge-Web-sub001/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getOperatorIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxOperatorIDKey)
	if v == nil {
		return "", false
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// requestContext forwards the operator's bearer token to the order service.
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if token, ok := c.Get(middleware.CtxBearerTokenKey).(string); ok && token != "" {
		ctx = repo.WithBearerToken(ctx, token)
	}
	return ctx
}
