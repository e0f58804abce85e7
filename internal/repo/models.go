package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

type Receipt struct {
	OrderNumber    string          `db:"order_number"`
	SessionID      string          `db:"session_id"`
	ProductID      string          `db:"product_id"`
	ProductName    sql.NullString  `db:"product_name"`
	Amount         decimal.Decimal `db:"amount"`
	Status         string          `db:"status"`
	PaymentStatus  string          `db:"payment_status"`
	CustomerName   string          `db:"customer_name"`
	CustomerEmail  string          `db:"customer_email"`
	PaymentID      sql.NullString  `db:"payment_id"`
	GatewayOrderID sql.NullString  `db:"gateway_order_id"`
	ConfirmedAt    sql.NullTime    `db:"confirmed_at"`
	RecordedAt     time.Time       `db:"recorded_at"`
}

type Share struct {
	OrderNumber string    `db:"order_number"`
	Platform    string    `db:"platform"`
	SharedAt    time.Time `db:"shared_at"`
}

func ShareToEntity(s Share) entities.ShareRecord {
	return entities.ShareRecord{
		Platform: s.Platform,
		SharedAt: s.SharedAt,
	}
}

func ReceiptToEntity(r Receipt, shares []Share) entities.Receipt {
	receipt := entities.Receipt{
		Confirmation: entities.OrderConfirmation{
			OrderNumber:   r.OrderNumber,
			Product:       nullStringToString(r.ProductName),
			ProductID:     r.ProductID,
			Amount:        r.Amount,
			Status:        entities.OrderStatus(r.Status),
			PaymentStatus: entities.PaymentStatus(r.PaymentStatus),
			CreatedAt:     nullTimeToTime(r.ConfirmedAt),
		},
		SessionID: r.SessionID,
		Customer: entities.CustomerDetails{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
		},
		PaymentID:      nullStringToString(r.PaymentID),
		GatewayOrderID: nullStringToString(r.GatewayOrderID),
		RecordedAt:     r.RecordedAt,
	}

	if len(shares) > 0 {
		receipt.Confirmation.SharedOnSocial = true
		receipt.Confirmation.SocialShares = make([]entities.ShareRecord, 0, len(shares))
		for _, s := range shares {
			receipt.Confirmation.SocialShares = append(receipt.Confirmation.SocialShares, ShareToEntity(s))
		}
	}

	return receipt
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}
