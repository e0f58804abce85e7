package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
)

type ReceiptRepo interface {
	GetReceipt(ctx context.Context, orderNumber string) (entities.Receipt, error)
	LatestReceipts(ctx context.Context, count int) ([]entities.Receipt, error)

	// Both writes are idempotent (ON CONFLICT DO NOTHING).
	SaveReceipt(ctx context.Context, r entities.Receipt) error
	SaveShares(ctx context.Context, orderNumber string, shares []entities.ShareRecord) error
}

var writeRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type receiptService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ReceiptRepo
}

func NewReceiptService(logger *slog.Logger, txManager trm.Manager, repo ReceiptRepo) *receiptService {
	return &receiptService{
		logger:    logger.With(slog.String("service", "receipt")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *receiptService) Record(ctx context.Context, receipt entities.Receipt) error {
	if receipt.RecordedAt.IsZero() {
		receipt.RecordedAt = time.Now().UTC()
	}
	number := receipt.Confirmation.OrderNumber

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveReceipt(ctx, receipt); err != nil {
				return fmt.Errorf("failed to save receipt: %w", err)
			}
			if err := s.repo.SaveShares(ctx, number, receipt.Confirmation.SocialShares); err != nil {
				return fmt.Errorf("failed to save shares: %w", err)
			}

			s.logger.Debug("receipt recorded", slog.String("order_number", number))
			return nil
		})
	}

	return utils.Retry(ctx, writeRetry, fn)
}

func (s *receiptService) RecordShare(ctx context.Context, orderNumber string, share entities.ShareRecord) error {
	fn := func() error {
		return s.repo.SaveShares(ctx, orderNumber, []entities.ShareRecord{share})
	}
	if err := utils.Retry(ctx, writeRetry, fn); err != nil {
		return fmt.Errorf("failed to record share: %w", err)
	}
	return nil
}

func (s *receiptService) Get(ctx context.Context, orderNumber string) (entities.Receipt, error) {
	var receipt entities.Receipt
	fn := func() error {
		var err error
		receipt, err = s.repo.GetReceipt(ctx, orderNumber)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrReceiptNotFound); err != nil {
		return entities.Receipt{}, err
	}
	return receipt, nil
}

func (s *receiptService) Latest(ctx context.Context, count int) ([]entities.Receipt, error) {
	receipts, err := s.repo.LatestReceipts(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest receipts: %w", err)
	}
	return receipts, nil
}
