package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	attemptsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "gateway",
		Name:      "attempts_opened_total",
		Help:      "Payment attempts opened in the hosted payment UI.",
	})
	attemptOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "gateway",
		Name:      "attempt_outcomes_total",
		Help:      "Resolved payment attempts by outcome.",
	}, []string{"outcome"})
)

type ScriptLoader interface {
	Ensure(ctx context.Context) error
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, productID string, customer entities.CustomerDetails, amount decimal.Decimal) (entities.GatewayOrder, error)
}

type PaymentValidator interface {
	ValidatePayment(ctx context.Context, outcome entities.PaymentOutcome) (bool, error)
}

type Config struct {
	KeyID        string
	CheckoutURL  string
	Currency     string
	MerchantName string

	// CallbackBaseURL is the public address of this service.
	CallbackBaseURL string
	AttemptTTL      time.Duration
}

type Request struct {
	SessionID string
	Product   entities.Product
	Customer  entities.CustomerDetails
}

type Prefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Options configure the hosted payment UI.
type Options struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OrderID     string            `json:"order_id"`
	Prefill     Prefill           `json:"prefill"`
	CallbackURL string            `json:"callback_url"`
	CancelURL   string            `json:"cancel_url"`
	FailureURL  string            `json:"failure_url"`
	RedirectURL string            `json:"redirect_url"`
	Notes       map[string]string `json:"notes"`
}

// Callback is the payload the hosted UI reports on success.
type Callback struct {
	AttemptID string
	PaymentID string
	OrderID   string
	Signature string
}

type Adapter struct {
	logger    *slog.Logger
	loader    ScriptLoader
	creator   OrderCreator
	validator PaymentValidator
	cfg       Config

	mu       sync.Mutex
	attempts map[string]*Attempt
}

func NewAdapter(logger *slog.Logger, loader ScriptLoader, creator OrderCreator, validator PaymentValidator, cfg Config) *Adapter {
	return &Adapter{
		logger:    logger.With(slog.String("component", "gateway")),
		loader:    loader,
		creator:   creator,
		validator: validator,
		cfg:       cfg,
		attempts:  make(map[string]*Attempt),
	}
}

// MinorUnits converts a major-unit amount to the gateway's integer minor units.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// Open starts a payment attempt. A failure to load the SDK or to create the
// pending order is reported through the returned attempt, already resolved.
func (a *Adapter) Open(ctx context.Context, req Request) *Attempt {
	attempt := newAttempt(uuid.NewString(), req)
	logger := a.logger.With(slog.String("attempt_id", attempt.ID), slog.String("session_id", req.SessionID))

	if err := a.loader.Ensure(ctx); err != nil {
		logger.Warn("payment attempt failed before opening", slog.Any("error", err))
		a.resolve(attempt, entities.Failed(entities.ReasonScriptUnavailable))
		return attempt
	}

	order, err := a.creator.CreateOrder(ctx, req.Product.ID, req.Customer, req.Product.Price)
	if err != nil {
		logger.Warn("failed to create gateway order", slog.Any("error", err))
		a.resolve(attempt, entities.Failed(entities.ReasonOrderCreationFailed))
		return attempt
	}

	attempt.Options = a.options(attempt.ID, req, order)
	attempt.CheckoutURL = a.checkoutURL(attempt.Options)

	a.mu.Lock()
	a.attempts[attempt.ID] = attempt
	a.mu.Unlock()

	time.AfterFunc(a.cfg.AttemptTTL, func() { a.expire(attempt) })

	attemptsOpened.Inc()
	logger.Info("payment attempt opened", slog.String("order_id", order.ID))
	return attempt
}

func (a *Adapter) options(attemptID string, req Request, order entities.GatewayOrder) Options {
	amount := req.Product.Price
	if order.Amount.IsPositive() {
		amount = order.Amount
	}
	currency := order.Currency
	if currency == "" {
		currency = a.cfg.Currency
	}

	return Options{
		Key:         a.cfg.KeyID,
		Amount:      MinorUnits(amount),
		Currency:    currency,
		Name:        a.cfg.MerchantName,
		Description: req.Product.Name,
		OrderID:     order.ID,
		Prefill: Prefill{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
		},
		CallbackURL: a.callbackURL("/gateway/callback", attemptID),
		CancelURL:   a.callbackURL("/gateway/dismiss", attemptID),
		FailureURL:  a.callbackURL("/gateway/failed", attemptID),
		RedirectURL: a.callbackURL("/gateway/redirect", attemptID),
		Notes: map[string]string{
			"attempt_id": attemptID,
			"session_id": req.SessionID,
		},
	}
}

func (a *Adapter) callbackURL(path, attemptID string) string {
	return strings.TrimRight(a.cfg.CallbackBaseURL, "/") + path + "?attempt_id=" + url.QueryEscape(attemptID)
}

func (a *Adapter) checkoutURL(opts Options) string {
	q := url.Values{}
	q.Set("key_id", opts.Key)
	q.Set("order_id", opts.OrderID)
	q.Set("amount", fmt.Sprint(opts.Amount))
	q.Set("currency", opts.Currency)
	q.Set("name", opts.Name)
	q.Set("description", opts.Description)
	q.Set("prefill[name]", opts.Prefill.Name)
	q.Set("prefill[email]", opts.Prefill.Email)
	q.Set("callback_url", opts.RedirectURL)
	q.Set("cancel_url", opts.CancelURL)
	for k, v := range opts.Notes {
		q.Set("notes["+k+"]", v)
	}
	return a.cfg.CheckoutURL + "?" + q.Encode()
}

func (a *Adapter) Lookup(attemptID string) (*Attempt, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	attempt, ok := a.attempts[attemptID]
	return attempt, ok
}

// Claim hands the success report of an attempt to exactly one caller.
// claimed is false when another report already got through.
func (a *Adapter) Claim(attemptID string) (attempt *Attempt, claimed bool, err error) {
	attempt, ok := a.Lookup(attemptID)
	if !ok {
		return nil, false, entities.ErrUnknownAttempt
	}
	if attempt.Resolved() || !attempt.claim() {
		return attempt, false, nil
	}
	return attempt, true, nil
}

// Verify turns a success report into an outcome.
func (a *Adapter) Verify(ctx context.Context, cb Callback) entities.PaymentOutcome {
	outcome := entities.Succeeded(cb.PaymentID, cb.OrderID, cb.Signature)
	if !outcome.Complete() {
		return entities.Failed(entities.ReasonIncompleteResponse)
	}

	ok, err := a.validator.ValidatePayment(ctx, outcome)
	if err != nil {
		a.logger.Warn("payment verification request failed",
			slog.String("attempt_id", cb.AttemptID), slog.Any("error", err))
		return entities.Failed(entities.ReasonVerificationFailed)
	}
	if !ok {
		return entities.Failed(entities.ReasonVerificationFailed)
	}
	return outcome
}

func (a *Adapter) HandleSuccess(ctx context.Context, cb Callback) error {
	attempt, claimed, err := a.Claim(cb.AttemptID)
	if err != nil {
		return err
	}
	if !claimed {
		a.logger.Debug("duplicate success report ignored", slog.String("attempt_id", cb.AttemptID))
		return nil
	}
	a.resolve(attempt, a.Verify(ctx, cb))
	return nil
}

func (a *Adapter) HandleDismiss(attemptID string) error {
	attempt, ok := a.Lookup(attemptID)
	if !ok {
		return entities.ErrUnknownAttempt
	}
	a.resolve(attempt, entities.Cancelled())
	return nil
}

func (a *Adapter) HandleFailure(attemptID, description string) error {
	attempt, ok := a.Lookup(attemptID)
	if !ok {
		return entities.ErrUnknownAttempt
	}
	a.resolve(attempt, entities.Failed(description))
	return nil
}

// Resolve settles an attempt from outside the callback handlers.
func (a *Adapter) Resolve(attemptID string, outcome entities.PaymentOutcome) {
	if attempt, ok := a.Lookup(attemptID); ok {
		a.resolve(attempt, outcome)
	}
}

// Cancel settles a still pending attempt as cancelled.
func (a *Adapter) Cancel(attemptID string) {
	a.Resolve(attemptID, entities.Cancelled())
}

func (a *Adapter) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, attempt := range a.attempts {
		if !attempt.Resolved() {
			n++
		}
	}
	return n
}

func (a *Adapter) resolve(attempt *Attempt, outcome entities.PaymentOutcome) {
	if !attempt.Resolve(outcome) {
		return
	}
	attemptOutcomes.WithLabelValues(outcome.Kind.String()).Inc()
	a.logger.Info("payment attempt resolved",
		slog.String("attempt_id", attempt.ID),
		slog.String("outcome", outcome.Kind.String()),
		slog.String("reason", outcome.Reason),
	)
}

// expire cancels an attempt nobody reported on and forgets it.
func (a *Adapter) expire(attempt *Attempt) {
	if !attempt.Resolved() {
		a.logger.Info("payment attempt expired", slog.String("attempt_id", attempt.ID))
	}
	a.resolve(attempt, entities.Cancelled())

	a.mu.Lock()
	delete(a.attempts, attempt.ID)
	a.mu.Unlock()
}
