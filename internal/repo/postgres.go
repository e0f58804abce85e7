package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var receiptColumns = []string{
	"order_number", "session_id", "product_id", "product_name", "amount",
	"status", "payment_status", "customer_name", "customer_email",
	"payment_id", "gateway_order_id", "confirmed_at", "recorded_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) LatestReceipts(ctx context.Context, count int) ([]entities.Receipt, error) {
	query, args := r.qb.Select(receiptColumns...).
		From("receipts").
		OrderBy("recorded_at DESC").
		Limit(uint64(count)).
		MustSql()

	var receipts []Receipt
	if err := r.selectContext(ctx, &receipts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select receipts: %w", err)
	}

	if len(receipts) == 0 {
		return []entities.Receipt{}, nil
	}

	numbers := make([]string, len(receipts))
	for i, receipt := range receipts {
		numbers[i] = receipt.OrderNumber
	}

	query, args = r.qb.Select("order_number", "platform", "shared_at").
		From("receipt_shares").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("shared_at").
		MustSql()

	var shares []Share
	if err := r.selectContext(ctx, &shares, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	sharesMap := make(map[string][]Share, len(receipts))
	for _, share := range shares {
		sharesMap[share.OrderNumber] = append(sharesMap[share.OrderNumber], share)
	}

	result := make([]entities.Receipt, 0, len(receipts))
	for _, receipt := range receipts {
		result = append(result, ReceiptToEntity(receipt, sharesMap[receipt.OrderNumber]))
	}
	return result, nil
}

func (r *postgresRepo) GetReceipt(ctx context.Context, orderNumber string) (entities.Receipt, error) {
	query, args := r.qb.Select(receiptColumns...).
		From("receipts").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	var receipt Receipt
	err := r.getContext(ctx, &receipt, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Receipt{}, entities.ErrReceiptNotFound
	}
	if err != nil {
		return entities.Receipt{}, fmt.Errorf("failed to get receipt: %w", err)
	}

	query, args = r.qb.Select("order_number", "platform", "shared_at").
		From("receipt_shares").
		Where(sq.Eq{"order_number": orderNumber}).
		OrderBy("shared_at").
		MustSql()

	var shares []Share
	if err := r.selectContext(ctx, &shares, query, args...); err != nil {
		return entities.Receipt{}, fmt.Errorf("failed to get shares: %w", err)
	}

	return ReceiptToEntity(receipt, shares), nil
}

// SaveReceipt is idempotent per order number.
func (r *postgresRepo) SaveReceipt(ctx context.Context, rc entities.Receipt) error {
	c := rc.Confirmation
	query, args := r.qb.Insert("receipts").
		Columns(receiptColumns...).
		Values(
			c.OrderNumber, rc.SessionID, c.ProductID, nullString(c.Product), c.Amount,
			string(c.Status), string(c.PaymentStatus), rc.Customer.Name, rc.Customer.Email,
			nullString(rc.PaymentID), nullString(rc.GatewayOrderID), nullTime(c.CreatedAt), rc.RecordedAt,
		).
		Suffix("ON CONFLICT (order_number) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveShares(ctx context.Context, orderNumber string, shares []entities.ShareRecord) error {
	if len(shares) == 0 {
		return nil
	}

	q := r.qb.Insert("receipt_shares").
		Columns("order_number", "platform", "shared_at").
		Suffix("ON CONFLICT (order_number, platform) DO NOTHING")

	for _, s := range shares {
		q = q.Values(orderNumber, s.Platform, s.SharedAt)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shares: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.ExecutorFrom(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, dest, query, args...)
}
