package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SEP491/FitBridge-Web-sub001/internal/config"
	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
	"github.com/SEP491/FitBridge-Web-sub001/internal/middleware"
	"github.com/SEP491/FitBridge-Web-sub001/internal/usecase"
	"github.com/SEP491/FitBridge-Web-sub001/internal/validator"
)

// OrderHandler is the JSON surface the operator UI drives. Each operator gets
// their own session (list + detail controllers) resolved from the JWT subject.
type OrderHandler struct {
	sessions        *usecase.SessionManager
	defaultPageSize int
}

func NewOrderHandler(sessions *usecase.SessionManager, defaultPageSize int) *OrderHandler {
	return &OrderHandler{sessions: sessions, defaultPageSize: defaultPageSize}
}

type StatusUpdateRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

type ShippingDispatchRequest struct {
	Remarks string `json:"remarks"`
}

// DispatchResponse carries the refreshed detail and the reloaded list in one
// round trip, since a dispatch refreshes both.
type DispatchResponse struct {
	Detail usecase.DetailView `json:"detail"`
	List   usecase.ListView   `json:"list"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/backoffice/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.BackofficeRoleGuard())

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PUT("/:id/confirm", h.confirm)
	g.PUT("/:id/status", h.updateStatus)
	g.PUT("/:id/cancel", h.cancel)
	g.POST("/:id/shipping", h.dispatchShipping)
}

func (h *OrderHandler) session(c echo.Context) (*usecase.Session, bool) {
	operatorID, ok := getOperatorIDFromContext(c)
	if !ok {
		return nil, false
	}
	return h.sessions.Session(operatorID), true
}

func (h *OrderHandler) list(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	size := h.defaultPageSize
	if v := c.QueryParam("size"); v != "" {
		sz, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid size"})
		}
		size = sz
	}

	status, err := validator.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
	}

	out, err := s.List.Load(requestContext(c), model.ListQuery{
		Page:   page,
		Size:   size,
		Status: status,
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := s.Detail.Select(requestContext(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// ensureFocused re-selects the order when the session focus drifted from the
// row the UI is acting on (new tab, direct link).
func ensureFocused(c echo.Context, s *usecase.Session, id string) error {
	if view, err := s.Detail.View(); err == nil && view.Order.ID == id {
		return nil
	}
	_, err := s.Detail.Select(requestContext(c), id)
	return err
}

func (h *OrderHandler) confirm(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := ensureFocused(c, s, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	out, err := s.Detail.Confirm(requestContext(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	target, err := validator.ParseTargetStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
	}

	if err := ensureFocused(c, s, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	out, err := s.Detail.UpdateStatus(requestContext(c), target, req.Description)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := ensureFocused(c, s, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	out, err := s.Detail.Cancel(requestContext(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) dispatchShipping(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ShippingDispatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := ensureFocused(c, s, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	detail, err := s.Detail.DispatchShipping(requestContext(c), req.Remarks)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DispatchResponse{
		Detail: detail,
		List:   s.List.View(),
	})
}
