package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/buynothing-checkout/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var receipt = entities.Receipt{
	Confirmation: entities.OrderConfirmation{
		OrderNumber:   "ON-1",
		ProductID:     "p1",
		Amount:        product.Price,
		Status:        entities.OrderConfirmed,
		PaymentStatus: entities.PaymentPaid,
	},
	SessionID:  "s1",
	Customer:   customer,
	PaymentID:  "pay_1",
	RecordedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
}

func TestReceiptHandler_List(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockReceipts)
		wantStatus   int
	}{
		{
			name: "default limit",
			mockBehavior: func(svc *mocks.MockReceipts) {
				svc.EXPECT().Latest(mock.Anything, 50).Return([]entities.Receipt{receipt}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "custom limit",
			query: "?limit=5",
			mockBehavior: func(svc *mocks.MockReceipts) {
				svc.EXPECT().Latest(mock.Anything, 5).Return([]entities.Receipt{receipt}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "too many", query: "?limit=500", mockBehavior: func(svc *mocks.MockReceipts) {}, wantStatus: http.StatusBadRequest},
		{name: "zero", query: "?limit=0", mockBehavior: func(svc *mocks.MockReceipts) {}, wantStatus: http.StatusBadRequest},
		{name: "not a number", query: "?limit=ten", mockBehavior: func(svc *mocks.MockReceipts) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReceipts(t)
			tc.mockBehavior(svc)

			h := handler.NewReceiptHandler(discardLogger(), svc, 50)
			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/receipts"+tc.query, nil))
			assert.Equal(t, tc.wantStatus, status)

			if tc.wantStatus == http.StatusOK {
				var resp []handler.Receipt
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				require.Len(t, resp, 1)
				assert.Equal(t, "ON-1", resp[0].OrderNumber)
				assert.Equal(t, "ada@x.io", resp[0].CustomerEmail)
			}
		})
	}
}

func TestReceiptHandler_Get(t *testing.T) {
	svc := mocks.NewMockReceipts(t)
	svc.EXPECT().Get(mock.Anything, "ON-1").Return(receipt, nil).Once()
	svc.EXPECT().Get(mock.Anything, "ON-404").Return(entities.Receipt{}, entities.ErrReceiptNotFound).Once()

	h := handler.NewReceiptHandler(discardLogger(), svc, 50)

	status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/receipts/ON-1", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"orderNumber":"ON-1"`)
	assert.Contains(t, body, `"sessionId":"s1"`)

	status, body = serve(t, h, httptest.NewRequest(http.MethodGet, "/receipts/ON-404", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"receipt not found"`)
}
