package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/buynothing-checkout/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/buynothing-checkout/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiptService_Record(t *testing.T) {
	type MockBehavior func(repo *mocks.MockReceiptRepo)

	dbError := errors.New("db error")
	receipt := entities.Receipt{
		Confirmation: entities.OrderConfirmation{
			OrderNumber: "ON-1",
			Amount:      decimal.RequireFromString("9.99"),
			SocialShares: []entities.ShareRecord{
				{Platform: "twitter", SharedAt: time.Now()},
			},
		},
		SessionID: "s1",
		Customer:  entities.CustomerDetails{Name: "Ada", Email: "ada@x.io"},
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockReceiptRepo) {
				repo.EXPECT().SaveReceipt(mock.Anything, mock.MatchedBy(func(r entities.Receipt) bool {
					return r.Confirmation.OrderNumber == "ON-1" && !r.RecordedAt.IsZero()
				})).Return(nil).Once()
				repo.EXPECT().SaveShares(mock.Anything, "ON-1", receipt.Confirmation.SocialShares).Return(nil).Once()
			},
		},
		{
			name: "retried after failure",
			mockBehavior: func(repo *mocks.MockReceiptRepo) {
				repo.EXPECT().SaveReceipt(mock.Anything, mock.Anything).Return(dbError).Once()
				repo.EXPECT().SaveReceipt(mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveShares(mock.Anything, "ON-1", mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "SaveShares keeps failing",
			mockBehavior: func(repo *mocks.MockReceiptRepo) {
				repo.EXPECT().SaveReceipt(mock.Anything, mock.Anything).Return(nil)
				repo.EXPECT().SaveShares(mock.Anything, "ON-1", mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReceiptRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(repo)

			svc := service.NewReceiptService(logger, tx, repo)
			err := svc.Record(context.Background(), receipt)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReceiptService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockReceiptRepo(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().GetReceipt(mock.Anything, "ON-404").
			Return(entities.Receipt{}, entities.ErrReceiptNotFound).Once()

		svc := service.NewReceiptService(logger, tx, repo)
		_, err := svc.Get(context.Background(), "ON-404")
		assert.ErrorIs(t, err, entities.ErrReceiptNotFound)
	})

	t.Run("found", func(t *testing.T) {
		repo := mocks.NewMockReceiptRepo(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		want := entities.Receipt{SessionID: "s1", Confirmation: entities.OrderConfirmation{OrderNumber: "ON-1"}}
		repo.EXPECT().GetReceipt(mock.Anything, "ON-1").Return(want, nil).Once()

		svc := service.NewReceiptService(logger, tx, repo)
		got, err := svc.Get(context.Background(), "ON-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestReceiptService_RecordShare(t *testing.T) {
	repo := mocks.NewMockReceiptRepo(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	share := entities.ShareRecord{Platform: "facebook", SharedAt: time.Now()}
	repo.EXPECT().SaveShares(mock.Anything, "ON-1", []entities.ShareRecord{share}).Return(nil).Once()

	svc := service.NewReceiptService(logger, tx, repo)
	require.NoError(t, svc.RecordShare(context.Background(), "ON-1", share))
}
