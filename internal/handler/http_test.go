package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/buynothing-checkout/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	product = entities.Product{
		ID:       "p1",
		Name:     "Pure Nothing",
		Price:    decimal.RequireFromString("9.99"),
		Category: entities.CategoryPremium,
	}
	customer = entities.CustomerDetails{Name: "Ada", Email: "ada@x.io"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

func serve(t *testing.T, h initer, req *http.Request) (int, string) {
	t.Helper()
	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func snapshot(step entities.Step) checkout.Snapshot {
	return checkout.Snapshot{ID: "s1", Product: product, Step: step}
}

func TestCheckoutHandler_Open(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckout)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"productId":"p1"}`,
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Open(mock.Anything, "p1").Return(snapshot(entities.StepDetail), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"step":"detail"`,
		},
		{
			name:         "missing product",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockCheckout) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ProductID":"required"`,
		},
		{
			name:         "bad json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockCheckout) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "product not found",
			body: `{"productId":"nope"}`,
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Open(mock.Anything, "nope").Return(checkout.Snapshot{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name: "internal error",
			body: `{"productId":"p1"}`,
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Open(mock.Anything, "p1").Return(checkout.Snapshot{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckout(t)
			tc.mockBehavior(svc)

			h := handler.NewCheckoutHandler(discardLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(tc.body))

			status, body := serve(t, h, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCheckoutHandler_SubmitDetails(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckout)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"customerName":"Ada","customerEmail":"ada@x.io"}`,
			mockBehavior: func(svc *mocks.MockCheckout) {
				snap := snapshot(entities.StepPayment)
				snap.Customer = customer
				svc.EXPECT().
					SubmitDetails("s1", checkout.DetailsForm{Name: "Ada", Email: "ada@x.io"}).
					Return(snap, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"customer":{"customerName":"Ada","customerEmail":"ada@x.io"}`,
		},
		{
			name: "validation error",
			body: `{"customerName":"","customerEmail":"nope"}`,
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().
					SubmitDetails("s1", mock.Anything).
					Return(snapshot(entities.StepDetail), &entities.ValidationError{Fields: map[string]string{
						"customerName":  "Name is required",
						"customerEmail": "Valid email is required",
					}}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"customerEmail":"Valid email is required"`,
		},
		{
			name: "wrong step",
			body: `{"customerName":"Ada","customerEmail":"ada@x.io"}`,
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().
					SubmitDetails("s1", mock.Anything).
					Return(snapshot(entities.StepPayment), &entities.TransitionError{From: entities.StepPayment, Action: "submit details"}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `cannot submit details`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckout(t)
			tc.mockBehavior(svc)

			h := handler.NewCheckoutHandler(discardLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/sessions/s1/details", strings.NewReader(tc.body))

			status, body := serve(t, h, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCheckoutHandler_Pay(t *testing.T) {
	testCases := []struct {
		name       string
		result     checkout.PayResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "opened",
			result: checkout.PayResult{
				AttemptID:   "a1",
				CheckoutURL: "https://pay.example/checkout?order_id=order_1",
				Options:     gateway.Options{Key: "rzp_test", Amount: 999, Currency: "INR", OrderID: "order_1"},
				Session:     snapshot(entities.StepPayment),
			},
			wantStatus: http.StatusOK,
			wantBody:   `"amount":999`,
		},
		{
			name:       "gateway unavailable",
			err:        entities.ErrGatewayUnavailable,
			wantStatus: http.StatusBadGateway,
			wantBody:   `"gateway script unavailable"`,
		},
		{
			name:       "already paying",
			err:        entities.ErrPaymentInProgress,
			wantStatus: http.StatusConflict,
			wantBody:   `"payment already in progress"`,
		},
		{
			name:       "already confirmed",
			err:        entities.ErrAlreadyConfirmed,
			wantStatus: http.StatusConflict,
			wantBody:   `"order already confirmed"`,
		},
		{
			name:       "session not found",
			err:        entities.ErrSessionNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"checkout session not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckout(t)
			svc.EXPECT().Pay(mock.Anything, "s1").Return(tc.result, tc.err).Once()

			h := handler.NewCheckoutHandler(discardLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/sessions/s1/pay", nil)

			status, body := serve(t, h, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.PayResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "a1", resp.AttemptID)
				assert.Equal(t, "order_1", resp.Options.OrderID)
				assert.Equal(t, "payment", resp.Session.Step)
			}
		})
	}
}

func TestCheckoutHandler_Share(t *testing.T) {
	confirmed := snapshot(entities.StepShare)
	confirmed.Confirmation = &entities.OrderConfirmation{OrderNumber: "ON-1", Amount: product.Price}
	confirmed.Shared = []entities.Platform{entities.PlatformTwitter}

	testCases := []struct {
		name         string
		platform     string
		mockBehavior func(svc *mocks.MockCheckout)
		wantStatus   int
		wantBody     string
	}{
		{
			name:     "shared",
			platform: "twitter",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Share(mock.Anything, "s1", entities.PlatformTwitter).
					Return(checkout.ShareResult{URL: "https://t.example/ON-1", Session: confirmed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"shareUrl":"https://t.example/ON-1"`,
		},
		{
			name:     "unknown platform",
			platform: "myspace",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Share(mock.Anything, "s1", entities.Platform("myspace")).
					Return(checkout.ShareResult{}, entities.ErrUnknownPlatform).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"unknown share platform"`,
		},
		{
			name:     "share api failed",
			platform: "facebook",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Share(mock.Anything, "s1", entities.PlatformFacebook).
					Return(checkout.ShareResult{Session: confirmed}, entities.ErrShareUnavailable).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"share url unavailable"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckout(t)
			tc.mockBehavior(svc)

			h := handler.NewCheckoutHandler(discardLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/sessions/s1/share/"+tc.platform, nil)

			status, body := serve(t, h, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCheckoutHandler_Transitions(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		path         string
		mockBehavior func(svc *mocks.MockCheckout)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/sessions/s1",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Session("s1").Return(snapshot(entities.StepDetail), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"s1"`,
		},
		{
			name:   "back",
			method: http.MethodPost,
			path:   "/sessions/s1/back",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Back("s1").Return(snapshot(entities.StepDetail), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"step":"detail"`,
		},
		{
			name:   "back while confirming",
			method: http.MethodPost,
			path:   "/sessions/s1/back",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Back("s1").Return(snapshot(entities.StepPayment), entities.ErrPaymentInProgress).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "go to share",
			method: http.MethodPost,
			path:   "/sessions/s1/share",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().GoToShare("s1").Return(snapshot(entities.StepShare), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"step":"share"`,
		},
		{
			name:   "retry confirmation failed",
			method: http.MethodPost,
			path:   "/sessions/s1/confirm/retry",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().RetryConfirmation(mock.Anything, "s1").
					Return(snapshot(entities.StepPayment), entities.ErrConfirmationNetwork).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"order confirmation request failed"`,
		},
		{
			name:   "nothing to retry",
			method: http.MethodPost,
			path:   "/sessions/s1/confirm/retry",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().RetryConfirmation(mock.Anything, "s1").
					Return(snapshot(entities.StepPayment), entities.ErrNothingToRetry).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "reset",
			method: http.MethodPost,
			path:   "/sessions/s1/reset",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Reset("s1").Return(snapshot(entities.StepDetail), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"shared":[]`,
		},
		{
			name:   "reset while confirming",
			method: http.MethodPost,
			path:   "/sessions/s1/reset",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Reset("s1").Return(snapshot(entities.StepPayment), entities.ErrPaymentInProgress).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "close",
			method: http.MethodDelete,
			path:   "/sessions/s1",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Close("s1").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "close unknown",
			method: http.MethodDelete,
			path:   "/sessions/s1",
			mockBehavior: func(svc *mocks.MockCheckout) {
				svc.EXPECT().Close("s1").Return(entities.ErrSessionNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckout(t)
			tc.mockBehavior(svc)

			h := handler.NewCheckoutHandler(discardLogger(), svc)
			req := httptest.NewRequest(tc.method, tc.path, nil)

			status, body := serve(t, h, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestSessionToJSON(t *testing.T) {
	snap := snapshot(entities.StepConfirmed)
	snap.Customer = customer
	outcome := entities.Succeeded("pay_1", "order_1", "sig")
	snap.Outcome = &outcome
	snap.Confirmation = &entities.OrderConfirmation{
		OrderNumber:   "ON-1",
		Amount:        product.Price,
		Status:        entities.OrderConfirmed,
		PaymentStatus: entities.PaymentPaid,
	}
	snap.Notices = []checkout.Notice{{Level: checkout.NoticeInfo, Message: "Order ON-1 confirmed"}}

	res := handler.SessionToJSON(snap)
	assert.Equal(t, "confirmed", res.Step)
	require.NotNil(t, res.Customer)
	assert.Equal(t, "Ada", res.Customer.Name)
	require.NotNil(t, res.Outcome)
	assert.Equal(t, "success", res.Outcome.Kind)
	require.NotNil(t, res.Confirmation)
	assert.Equal(t, "ON-1", res.Confirmation.OrderNumber)
	assert.Equal(t, "paid", res.Confirmation.PaymentStatus)
	assert.Len(t, res.Notices, 1)
	assert.Empty(t, res.Shared)
}
