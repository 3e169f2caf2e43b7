package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
)

// Client implements repo.OrderRepository against the storefront order API.
// It holds no request state; every call stands alone.
type Client struct {
	baseURL      string
	http         *http.Client
	serviceToken string // fallback when the context carries no operator token
}

func NewClient(baseURL, serviceToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		serviceToken: serviceToken,
	}
}

var _ repo.OrderRepository = (*Client)(nil)

type listResponse struct {
	Items      []model.Order `json:"items"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// Some storefront deployments wrap collection responses in a data envelope.
type wrappedListResponse struct {
	Data *listResponse `json:"data"`
}

func (c *Client) List(ctx context.Context, q model.ListQuery) (model.OrderPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("size", strconv.Itoa(q.Size))
	if q.Status != nil {
		query.Set("status", string(*q.Status))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	body, err := c.do(ctx, http.MethodGet, "/orders?"+query.Encode(), nil, "")
	if err != nil {
		return model.OrderPage{}, err
	}

	var wrapped wrappedListResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return pageFrom(*wrapped.Data), nil
	}

	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return model.OrderPage{}, &repo.TransportError{Err: fmt.Errorf("decode order list: %w", err)}
	}
	return pageFrom(out), nil
}

func pageFrom(r listResponse) model.OrderPage {
	items := r.Items
	if items == nil {
		items = []model.Order{}
	}
	return model.OrderPage{Items: items, Total: r.Total, TotalPages: r.TotalPages}
}

func (c *Client) Get(ctx context.Context, id string) (model.Order, error) {
	body, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, id)
	if err != nil {
		return model.Order{}, err
	}

	// Tolerate the same {data:{...}} envelope as the list endpoint.
	var wrapped struct {
		Data *model.Order `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return *wrapped.Data, nil
	}

	var out model.Order
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Order{}, &repo.TransportError{Err: fmt.Errorf("decode order %s: %w", id, err)}
	}
	return out, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, in repo.StatusUpdate) error {
	payload := map[string]any{
		"status":      string(in.Status),
		"description": in.Description,
	}
	_, err := c.do(ctx, http.MethodPut, "/orders/status/"+url.PathEscape(id), payload, id)
	return err
}

func (c *Client) Cancel(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/orders/shipping/cancel/"+url.PathEscape(id), nil, id)
	return err
}

func (c *Client) CreateShippingOrder(ctx context.Context, in repo.ShippingOrderInput) error {
	payload := map[string]any{
		"orderId": in.OrderID,
		"remarks": in.Remarks,
	}
	_, err := c.do(ctx, http.MethodPost, "/orders/shipping", payload, in.OrderID)
	return err
}

// do issues one request and maps the response onto the repository error
// taxonomy. orderID is only used to label NotFoundError.
func (c *Client) do(ctx context.Context, method, path string, payload any, orderID string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &repo.TransportError{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &repo.TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	token := repo.BearerFromContext(ctx)
	if token == "" {
		token = c.serviceToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &repo.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &repo.TransportError{Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, &repo.NotFoundError{ID: orderID}
	case resp.StatusCode == http.StatusConflict:
		return nil, &repo.ConflictError{Message: serverMessage(body)}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &repo.ValidationError{Status: resp.StatusCode, Message: serverMessage(body)}
	default:
		return nil, &repo.TransportError{Status: resp.StatusCode}
	}
}

// serverMessage extracts the operator-facing reason from an error body. The
// raw body is the fallback so nothing the server said gets lost.
func serverMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(body))
}
