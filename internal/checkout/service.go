package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/mailbox"
	"github.com/google/uuid"
)

type ProductCatalog interface {
	Get(ctx context.Context, id string) (entities.Product, error)
}

type Payments interface {
	Open(ctx context.Context, req gateway.Request) *gateway.Attempt
	Claim(attemptID string) (*gateway.Attempt, bool, error)
	Verify(ctx context.Context, cb gateway.Callback) entities.PaymentOutcome
	Resolve(attemptID string, outcome entities.PaymentOutcome)
	Cancel(attemptID string)
}

type Orders interface {
	ConfirmOrder(ctx context.Context, customer entities.CustomerDetails, productID string, outcome entities.PaymentOutcome) (entities.OrderConfirmation, error)
	ShareURL(ctx context.Context, orderNumber string, platform entities.Platform) (string, error)
}

type Mailbox interface {
	Post(ctx context.Context, key string, payload []byte) error
	Watch(ctx context.Context, key string, fn func(payload []byte))
}

type ReceiptJournal interface {
	Record(ctx context.Context, receipt entities.Receipt) error
	RecordShare(ctx context.Context, orderNumber string, share entities.ShareRecord) error
}

type EventPublisher interface {
	PublishConfirmed(ctx context.Context, receipt entities.Receipt) error
	PublishShared(ctx context.Context, orderNumber string, share entities.ShareRecord) error
}

type Config struct {
	MailboxKey string
	SessionTTL time.Duration
}

const janitorInterval = time.Minute

type PayResult struct {
	AttemptID   string
	CheckoutURL string
	Options     gateway.Options
	Session     Snapshot
}

type ShareResult struct {
	URL           string
	AlreadyShared bool
	Session       Snapshot
}

type Service struct {
	logger   *slog.Logger
	catalog  ProductCatalog
	payments Payments
	orders   Orders
	mailbox  Mailbox
	journal  ReceiptJournal
	events   EventPublisher
	cfg      Config
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

type Deps struct {
	Catalog  ProductCatalog
	Payments Payments
	Orders   Orders
	Mailbox  Mailbox
	Journal  ReceiptJournal
	Events   EventPublisher
}

func NewService(logger *slog.Logger, deps Deps, cfg Config) *Service {
	return &Service{
		logger:   logger.With(slog.String("service", "checkout")),
		catalog:  deps.Catalog,
		payments: deps.Payments,
		orders:   deps.Orders,
		mailbox:  deps.Mailbox,
		journal:  deps.Journal,
		events:   deps.Events,
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Open starts a session for the product and begins listening for
// out-of-band order signals addressed to it.
func (s *Service) Open(ctx context.Context, productID string) (Snapshot, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return Snapshot{}, err
	}

	sess := newSession(context.Background(), uuid.NewString(), product, s.now)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	key := mailbox.Key(s.cfg.MailboxKey, sess.id)
	go s.mailbox.Watch(sess.ctx, key, func(payload []byte) {
		s.handleSignal(sess, payload)
	})

	sessionsOpen.Inc()
	s.logger.Info("checkout session opened", slog.String("session_id", sess.id), slog.String("product_id", product.ID))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (s *Service) Session(id string) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (s *Service) SubmitDetails(id string, form DetailsForm) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if sess.step != entities.StepDetail {
		return sess.snapshot(), sess.transitionError("submit details")
	}

	customer, err := CaptureDetails(form)
	if err != nil {
		return sess.snapshot(), err
	}
	if err := sess.submitDetails(customer); err != nil {
		return sess.snapshot(), err
	}
	return sess.snapshot(), nil
}

// Pay opens a gateway attempt. The outcome is applied asynchronously when
// the gateway reports back; failures that happen before the hosted UI opens
// are applied right away.
func (s *Service) Pay(ctx context.Context, id string) (PayResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return PayResult{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if err := sess.beginPayment(); err != nil {
		snap := sess.snapshot()
		sess.mu.Unlock()
		return PayResult{Session: snap}, err
	}
	req := gateway.Request{SessionID: sess.id, Product: sess.product, Customer: sess.customer}
	sess.mu.Unlock()

	attempt := s.payments.Open(ctx, req)

	sess.mu.Lock()
	if !sess.attach(attempt.ID) {
		snap := sess.snapshot()
		err := sess.transitionError("pay")
		sess.mu.Unlock()
		s.payments.Cancel(attempt.ID)
		return PayResult{Session: snap}, err
	}

	if outcome, ok := attempt.Outcome(); ok && !outcome.IsSuccess() {
		sess.applyOutcome(attempt.ID, outcome)
		snap := sess.snapshot()
		sess.mu.Unlock()
		paymentOutcomes.WithLabelValues(outcome.Kind.String()).Inc()
		return PayResult{AttemptID: attempt.ID, Session: snap}, outcomeError(outcome)
	}

	result := PayResult{
		AttemptID:   attempt.ID,
		CheckoutURL: attempt.CheckoutURL,
		Options:     attempt.Options,
		Session:     sess.snapshot(),
	}
	sess.mu.Unlock()

	go s.await(sess, attempt)
	return result, nil
}

func outcomeError(outcome entities.PaymentOutcome) error {
	switch {
	case outcome.Kind == entities.OutcomeCancelled:
		return entities.ErrGatewayCancelled
	case outcome.Reason == entities.ReasonScriptUnavailable:
		return entities.ErrGatewayUnavailable
	default:
		return fmt.Errorf("%w: %s", entities.ErrGatewayFailure, outcome.Reason)
	}
}

func (s *Service) await(sess *session, attempt *gateway.Attempt) {
	outcome, err := attempt.Wait(sess.ctx)
	if err != nil {
		return
	}
	s.settle(sess, attempt.ID, outcome)
}

func (s *Service) settle(sess *session, attemptID string, outcome entities.PaymentOutcome) {
	logger := s.logger.With(slog.String("session_id", sess.id), slog.String("attempt_id", attemptID))

	sess.mu.Lock()
	applied, submit := sess.applyOutcome(attemptID, outcome)
	sess.mu.Unlock()

	if !applied {
		logger.Debug("stale payment outcome ignored", slog.String("outcome", outcome.Kind.String()))
		return
	}
	paymentOutcomes.WithLabelValues(outcome.Kind.String()).Inc()
	logger.Info("payment outcome applied", slog.String("outcome", outcome.Kind.String()), slog.String("reason", outcome.Reason))

	if submit {
		s.confirm(context.WithoutCancel(sess.ctx), sess, outcome)
	}
}

// confirm submits one confirmation for a successful outcome. The session
// must already be marked as submitting.
func (s *Service) confirm(ctx context.Context, sess *session, outcome entities.PaymentOutcome) error {
	sess.mu.Lock()
	customer, productID := sess.customer, sess.product.ID
	sess.mu.Unlock()

	start := time.Now()
	conf, err := s.orders.ConfirmOrder(ctx, customer, productID, outcome)
	confirmationDuration.Observe(time.Since(start).Seconds())

	logger := s.logger.With(slog.String("session_id", sess.id), slog.String("payment_id", outcome.PaymentID))

	sess.mu.Lock()
	if err != nil {
		sess.failConfirmation(err)
		sess.mu.Unlock()
		confirmationsTotal.WithLabelValues(confirmationResult(err)).Inc()
		logger.Warn("order confirmation failed", slog.Any("error", err))
		return err
	}
	applied := sess.applyConfirmation(conf)
	sess.mu.Unlock()

	confirmationsTotal.WithLabelValues("accepted").Inc()
	if applied {
		logger.Info("order confirmed", slog.String("order_number", conf.OrderNumber))
	} else {
		logger.Warn("order confirmed after the session closed", slog.String("order_number", conf.OrderNumber))
	}
	s.journalConfirmed(ctx, sess.id, customer, conf, outcome)
	return nil
}

func confirmationResult(err error) string {
	if errors.Is(err, entities.ErrConfirmationRejected) {
		return "rejected"
	}
	return "network_error"
}

// RetryConfirmation resubmits the stored successful payment without charging again.
func (s *Service) RetryConfirmation(ctx context.Context, id string) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if err := sess.beginRetry(); err != nil {
		snap := sess.snapshot()
		sess.mu.Unlock()
		return snap, err
	}
	outcome := *sess.outcome
	sess.mu.Unlock()

	err = s.confirm(ctx, sess, outcome)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), err
}

func (s *Service) Back(id string) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	cancel, err := sess.back()
	snap := sess.snapshot()
	sess.mu.Unlock()

	if cancel != "" {
		s.payments.Cancel(cancel)
	}
	return snap, err
}

func (s *Service) GoToShare(id string) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	err = sess.goToShare()
	return sess.snapshot(), err
}

// Share fetches a share link for the platform. A platform that was already
// shared returns the link from the first time without asking again.
func (s *Service) Share(ctx context.Context, id string, platform entities.Platform) (ShareResult, error) {
	if !platform.Valid() {
		return ShareResult{}, entities.ErrUnknownPlatform
	}

	sess, err := s.get(id)
	if err != nil {
		return ShareResult{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.step != entities.StepShare {
		snap := sess.snapshot()
		err := sess.transitionError("share")
		sess.mu.Unlock()
		return ShareResult{Session: snap}, err
	}
	if url, ok := sess.shares[platform]; ok {
		snap := sess.snapshot()
		sess.mu.Unlock()
		return ShareResult{URL: url, AlreadyShared: true, Session: snap}, nil
	}
	orderNumber := sess.confirmation.OrderNumber
	sess.mu.Unlock()

	url, err := s.orders.ShareURL(ctx, orderNumber, platform)

	sess.mu.Lock()
	if err != nil {
		sess.notify(NoticeError, "Could not share on %s", platform)
		snap := sess.snapshot()
		sess.mu.Unlock()
		sharesTotal.WithLabelValues(string(platform), "failed").Inc()
		s.logger.Warn("share url unavailable", slog.String("session_id", id), slog.Any("error", err))
		return ShareResult{Session: snap}, err
	}
	if sess.step != entities.StepShare {
		snap := sess.snapshot()
		sess.mu.Unlock()
		return ShareResult{URL: url, Session: snap}, nil
	}
	share := entities.ShareRecord{Platform: string(platform), SharedAt: s.now().UTC()}
	sess.recordShare(platform, url, share.SharedAt)
	snap := sess.snapshot()
	sess.mu.Unlock()

	sharesTotal.WithLabelValues(string(platform), "shared").Inc()

	if err := s.journal.RecordShare(ctx, orderNumber, share); err != nil {
		s.logger.Error("failed to journal share", slog.String("order_number", orderNumber), slog.Any("error", err))
	}
	if err := s.events.PublishShared(ctx, orderNumber, share); err != nil {
		s.logger.Error("failed to publish share event", slog.String("order_number", orderNumber), slog.Any("error", err))
	}

	return ShareResult{URL: url, Session: snap}, nil
}

// Reset clears the session back to an empty detail step for the same product.
// It is refused while a confirmation is being submitted.
func (s *Service) Reset(id string) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.submitting {
		snap := sess.snapshot()
		sess.mu.Unlock()
		return snap, entities.ErrPaymentInProgress
	}
	cancel := sess.reset()
	snap := sess.snapshot()
	sess.mu.Unlock()

	if cancel != "" {
		s.payments.Cancel(cancel)
	}
	return snap, nil
}

// Close discards the session and stops its mailbox listener.
func (s *Service) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return entities.ErrSessionNotFound
	}

	sess.mu.Lock()
	cancel := sess.close()
	sess.mu.Unlock()

	sess.cancel()
	if cancel != "" {
		s.payments.Cancel(cancel)
	}

	sessionsOpen.Dec()
	s.logger.Info("checkout session closed", slog.String("session_id", id))
	return nil
}

// CompleteRedirect handles a completion that arrived through the gateway
// redirect instead of the in-page callback. A session held here is settled
// and confirmed directly. Otherwise the confirmed order reaches the session
// through its mailbox.
func (s *Service) CompleteRedirect(ctx context.Context, cb gateway.Callback) error {
	attempt, claimed, err := s.payments.Claim(cb.AttemptID)
	if err != nil {
		return err
	}
	if !claimed {
		s.logger.Debug("redirect for an already reported attempt", slog.String("attempt_id", cb.AttemptID))
		return nil
	}

	outcome := s.payments.Verify(ctx, cb)
	if !outcome.IsSuccess() {
		s.payments.Resolve(attempt.ID, outcome)
		return outcomeError(outcome)
	}

	req := attempt.Request
	sess, _ := s.get(req.SessionID)
	if sess != nil {
		sess.mu.Lock()
		applied, submit := sess.applyOutcome(attempt.ID, outcome)
		sess.mu.Unlock()

		if applied {
			paymentOutcomes.WithLabelValues(outcome.Kind.String()).Inc()
			// Wakes the waiter, which then finds nothing left to settle.
			s.payments.Resolve(attempt.ID, outcome)
			if !submit {
				return outcomeError(outcome)
			}
			return s.confirm(context.WithoutCancel(ctx), sess, outcome)
		}
	}

	conf, err := s.orders.ConfirmOrder(ctx, req.Customer, req.Product.ID, outcome)
	if err != nil {
		confirmationsTotal.WithLabelValues(confirmationResult(err)).Inc()
		s.keepForRetry(req.SessionID, attempt.ID, outcome, err)
		return err
	}
	confirmationsTotal.WithLabelValues("accepted").Inc()

	if sess != nil {
		// The session left the payment step. The paid order is still recorded.
		s.payments.Resolve(attempt.ID, outcome)
		s.logger.Warn("redirect confirmed an order the session no longer awaits",
			slog.String("session_id", req.SessionID),
			slog.String("order_number", conf.OrderNumber),
		)
		s.journalConfirmed(context.WithoutCancel(ctx), req.SessionID, req.Customer, conf, outcome)
		return nil
	}

	payload, err := NewSignal(conf, attempt.ID).Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal order signal: %w", err)
	}
	if err := s.mailbox.Post(ctx, mailbox.Key(s.cfg.MailboxKey, req.SessionID), payload); err != nil {
		return err
	}

	s.logger.Info("redirect completion posted",
		slog.String("session_id", req.SessionID),
		slog.String("order_number", conf.OrderNumber),
	)
	return nil
}

// keepForRetry parks a successful payment whose confirmation failed so the
// shopper can retry it from the payment step.
func (s *Service) keepForRetry(sessionID, attemptID string, outcome entities.PaymentOutcome, cause error) {
	sess, err := s.get(sessionID)
	if err != nil {
		s.payments.Cancel(attemptID)
		return
	}

	sess.mu.Lock()
	applied, _ := sess.applyOutcome(attemptID, outcome)
	if applied {
		sess.failConfirmation(cause)
	}
	sess.mu.Unlock()

	// The attempt no longer matches an awaiting session, so this only wakes the waiter.
	s.payments.Cancel(attemptID)
}

func (s *Service) handleSignal(sess *session, payload []byte) {
	logger := s.logger.With(slog.String("session_id", sess.id))

	sig, err := ParseSignal(payload)
	if err != nil {
		signalsTotal.WithLabelValues("malformed").Inc()
		logger.Warn("order signal dropped", slog.Any("error", err))
		return
	}

	sess.mu.Lock()
	accepted, cancel := sess.applySignal(sig)
	customer := sess.customer
	var conf entities.OrderConfirmation
	if accepted {
		conf = *sess.confirmation
	}
	sess.mu.Unlock()

	if cancel != "" {
		s.payments.Cancel(cancel)
	}
	if !accepted {
		signalsTotal.WithLabelValues("ignored").Inc()
		logger.Debug("order signal ignored", slog.String("order_number", sig.OrderNumber))
		return
	}

	signalsTotal.WithLabelValues("accepted").Inc()
	logger.Info("order signal applied", slog.String("order_number", conf.OrderNumber))
	s.journalConfirmed(context.WithoutCancel(sess.ctx), sess.id, customer, conf, entities.PaymentOutcome{})
}

func (s *Service) journalConfirmed(ctx context.Context, sessionID string, customer entities.CustomerDetails, conf entities.OrderConfirmation, outcome entities.PaymentOutcome) {
	receipt := entities.Receipt{
		Confirmation:   conf,
		SessionID:      sessionID,
		Customer:       customer,
		PaymentID:      outcome.PaymentID,
		GatewayOrderID: outcome.OrderID,
		RecordedAt:     s.now().UTC(),
	}

	if err := s.journal.Record(ctx, receipt); err != nil {
		s.logger.Error("failed to journal receipt", slog.String("order_number", conf.OrderNumber), slog.Any("error", err))
	}
	if err := s.events.PublishConfirmed(ctx, receipt); err != nil {
		s.logger.Error("failed to publish confirmation event", slog.String("order_number", conf.OrderNumber), slog.Any("error", err))
	}
}

func (s *Service) get(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return sess, nil
}

// Start runs the idle-session janitor and closes every session once ctx is done.
func (s *Service) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.closeIdle()
			case <-ctx.Done():
				s.closeAll()
				return
			}
		}
	}()
	return nil
}

func (s *Service) closeIdle() {
	deadline := s.now().Add(-s.cfg.SessionTTL)

	s.mu.RLock()
	var idle []string
	for id, sess := range s.sessions {
		sess.mu.Lock()
		if sess.touched.Before(deadline) && !sess.submitting {
			idle = append(idle, id)
		}
		sess.mu.Unlock()
	}
	s.mu.RUnlock()

	for _, id := range idle {
		_ = s.Close(id)
	}
}

func (s *Service) closeAll() {
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		_ = s.Close(id)
	}
}
