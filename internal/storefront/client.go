package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client talks to the externally owned storefront API.
type Client struct {
	logger  *slog.Logger
	doer    HTTPDoer
	baseURL string
}

func NewClient(logger *slog.Logger, doer HTTPDoer, baseURL string) *Client {
	return &Client{
		logger:  logger.With(slog.String("client", "storefront")),
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// StatusError is a non-2xx answer from the storefront API.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storefront returned status %d: %s", e.Status, e.Message)
}

func (c *Client) ListProducts(ctx context.Context, featuredOnly bool) ([]entities.Product, error) {
	path := "/products"
	if featuredOnly {
		path += "?featured=true"
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	var product Product
	err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product)
	if statusIs(err, http.StatusNotFound) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// CreateOrder registers a pending order and returns the gateway order id.
func (c *Client) CreateOrder(ctx context.Context, productID string, customer entities.CustomerDetails, amount decimal.Decimal) (entities.GatewayOrder, error) {
	body := createOrderRequest{
		ProductID:     productID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		Amount:        amount.InexactFloat64(),
	}

	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/checkout", body, &resp); err != nil {
		return entities.GatewayOrder{}, fmt.Errorf("failed to create order: %w", err)
	}

	order := resp.order()
	if order.ID == "" {
		return entities.GatewayOrder{}, errors.New("failed to create order: response has no order id")
	}
	return entities.GatewayOrder{ID: order.ID, Amount: order.Amount, Currency: order.Currency}, nil
}

// ValidatePayment asks the storefront to verify the gateway signature.
func (c *Client) ValidatePayment(ctx context.Context, outcome entities.PaymentOutcome) (bool, error) {
	body := validateRequest{
		OrderID:   outcome.OrderID,
		Signature: outcome.Signature,
		PaymentID: outcome.PaymentID,
	}

	var resp successResponse
	if err := c.do(ctx, http.MethodPost, "/checkout/validate", body, &resp); err != nil {
		return false, fmt.Errorf("failed to validate payment: %w", err)
	}
	return resp.Success, nil
}

// ConfirmOrder submits a successful payment. A 4xx answer is a rejection;
// anything else that fails is reported as a network error.
func (c *Client) ConfirmOrder(ctx context.Context, customer entities.CustomerDetails, productID string, outcome entities.PaymentOutcome) (entities.OrderConfirmation, error) {
	body := confirmRequest{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ProductID:     productID,
		PaymentDetails: paymentDetails{
			PaymentID: outcome.PaymentID,
			OrderID:   outcome.OrderID,
		},
	}

	var resp confirmResponse
	err := c.do(ctx, http.MethodPost, "/checkout/confirm", body, &resp)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status < http.StatusInternalServerError {
		return entities.OrderConfirmation{}, fmt.Errorf("%w: %s", entities.ErrConfirmationRejected, statusErr.Message)
	}
	if err != nil {
		return entities.OrderConfirmation{}, fmt.Errorf("%w: %w", entities.ErrConfirmationNetwork, err)
	}

	conf := resp.confirmation()
	if conf.OrderNumber == "" {
		return entities.OrderConfirmation{}, fmt.Errorf("%w: response has no order number", entities.ErrConfirmationRejected)
	}
	if conf.ProductID == "" {
		conf.ProductID = productID
	}
	return ConfirmationToEntity(conf), nil
}

func (c *Client) ShareURL(ctx context.Context, orderNumber string, platform entities.Platform) (string, error) {
	body := shareRequest{OrderNumber: orderNumber, Platform: string(platform)}

	var resp shareResponse
	if err := c.do(ctx, http.MethodPost, "/share", body, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrShareUnavailable, err)
	}
	if resp.ShareURL == "" {
		return "", fmt.Errorf("%w: empty share url", entities.ErrShareUnavailable)
	}
	return resp.ShareURL, nil
}

func (c *Client) SubmitContact(ctx context.Context, msg entities.ContactMessage) (bool, error) {
	body := contactRequest{
		CustomerName:  msg.Name,
		CustomerEmail: msg.Email,
		Message:       msg.Message,
	}

	var resp successResponse
	if err := c.do(ctx, http.MethodPost, "/contact", body, &resp); err != nil {
		return false, fmt.Errorf("failed to submit contact message: %w", err)
	}
	return resp.Success, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		c.logger.WarnContext(ctx, "storefront request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if dest == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var resp errorResponse
	if json.Unmarshal(body, &resp) == nil {
		if resp.Message != "" {
			return resp.Message
		}
		if resp.Error != "" {
			return resp.Error
		}
	}
	return strings.TrimSpace(string(body))
}

func statusIs(err error, status int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == status
}
