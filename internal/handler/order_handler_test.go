package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SEP491/FitBridge-Web-sub001/internal/config"
	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
	"github.com/SEP491/FitBridge-Web-sub001/internal/usecase"
)

const testSecret = "test_secret"

// =====================
// OrderRepository mock
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, q model.ListQuery) (model.OrderPage, error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(model.OrderPage)
	return page, args.Error(1)
}

func (m *OrderRepoMock) Get(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id string, in repo.StatusUpdate) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *OrderRepoMock) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderRepoMock) CreateShippingOrder(ctx context.Context, in repo.ShippingOrderInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

// =====================
// Helpers
// =====================

func newTestServer(t *testing.T, orders repo.OrderRepository) *echo.Echo {
	t.Helper()

	cfg := config.Config{JWTSecret: testSecret, DefaultPageSize: 10}
	sessions := usecase.NewSessionManager(orders, cfg.DefaultPageSize)
	h := NewOrderHandler(sessions, cfg.DefaultPageSize)

	e := echo.New()
	h.RegisterRoutes(e, cfg)
	return e
}

func signToken(t *testing.T, sub, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// Auth gating
// =====================

func TestOrderHandler_List_RequiresToken(t *testing.T) {
	e := newTestServer(t, new(OrderRepoMock))

	rec := doRequest(e, http.MethodGet, "/backoffice/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_List_RejectsNonBackofficeRole(t *testing.T) {
	e := newTestServer(t, new(OrderRepoMock))

	token := signToken(t, "member-1", "MEMBER")
	rec := doRequest(e, http.MethodGet, "/backoffice/orders", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// =====================
// List
// =====================

func TestOrderHandler_List_OK(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newTestServer(t, orders)

	finished := model.OrderStatusFinished
	orders.On("List", mock.Anything, model.ListQuery{Page: 1, Size: 10, Status: &finished}).
		Return(model.OrderPage{
			Items:      []model.Order{{ID: "o1", CurrentStatus: model.OrderStatusFinished, TotalAmount: 300000}},
			Total:      23,
			TotalPages: 3,
		}, nil)

	token := signToken(t, "admin-1", "ADMIN")
	rec := doRequest(e, http.MethodGet, "/backoffice/orders?status=Finished", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.ListView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(23), out.Total)
	assert.Equal(t, 3, out.TotalPages)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.PageStats.CountByStatus[model.OrderStatusFinished])
}

func TestOrderHandler_List_InvalidStatusFilter(t *testing.T) {
	e := newTestServer(t, new(OrderRepoMock))

	token := signToken(t, "admin-1", "ADMIN")
	rec := doRequest(e, http.MethodGet, "/backoffice/orders?status=Bogus", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =====================
// Detail + mutations
// =====================

func TestOrderHandler_ConfirmFlow(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newTestServer(t, orders)

	token := signToken(t, "owner-1", "GYM_OWNER")

	orders.On("List", mock.Anything, model.ListQuery{Page: 1, Size: 10}).
		Return(model.OrderPage{
			Items:      []model.Order{{ID: "o1", CurrentStatus: model.OrderStatusCreated}},
			Total:      1,
			TotalPages: 1,
		}, nil)

	rec := doRequest(e, http.MethodGet, "/backoffice/orders", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/backoffice/orders/o1", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail usecase.DetailView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Contains(t, detail.Actions, model.ActionConfirm)

	orders.On("UpdateStatus", mock.Anything, "o1",
		repo.StatusUpdate{Status: model.OrderStatusPending}).Return(nil)

	rec = doRequest(e, http.MethodPut, "/backoffice/orders/o1/confirm", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, model.OrderStatusPending, detail.Order.CurrentStatus)

	orders.AssertExpectations(t)
}

func TestOrderHandler_UpdateStatus_RejectsDisplaySubState(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newTestServer(t, orders)

	token := signToken(t, "admin-1", "ADMIN")

	rec := doRequest(e, http.MethodPut, "/backoffice/orders/o1/status", token,
		`{"status":"Arrived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_Dispatch_ReturnsDetailAndList(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newTestServer(t, orders)

	token := signToken(t, "admin-2", "ADMIN")

	processing := model.Order{ID: "O2", CurrentStatus: model.OrderStatusProcessing}
	orders.On("Get", mock.Anything, "O2").Return(processing, nil).Once()

	orders.On("CreateShippingOrder", mock.Anything,
		repo.ShippingOrderInput{OrderID: "O2", Remarks: "Giao giờ hành chính"}).Return(nil)

	// post-dispatch reload of the (never explicitly loaded) default query
	orders.On("List", mock.Anything, model.ListQuery{Page: 1, Size: 10}).
		Return(model.OrderPage{
			Items:      []model.Order{{ID: "O2", CurrentStatus: model.OrderStatusShipping}},
			Total:      1,
			TotalPages: 1,
		}, nil)

	rec := doRequest(e, http.MethodPost, "/backoffice/orders/O2/shipping", token,
		`{"remarks":"Giao giờ hành chính"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out DispatchResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, model.OrderStatusShipping, out.Detail.Order.CurrentStatus)
	if assert.Len(t, out.List.Items, 1) {
		assert.Equal(t, model.OrderStatusShipping, out.List.Items[0].CurrentStatus)
	}

	orders.AssertExpectations(t)
}
