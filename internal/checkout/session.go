package checkout

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
)

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient message for the shopper.
type Notice struct {
	Level   NoticeLevel
	Message string
	At      time.Time
}

const maxNotices = 20

// Snapshot is a read-only copy of a session.
type Snapshot struct {
	ID           string
	Product      entities.Product
	Step         entities.Step
	Customer     entities.CustomerDetails
	Outcome      *entities.PaymentOutcome
	Confirmation *entities.OrderConfirmation
	AttemptID    string
	Submitting   bool
	Shared       []entities.Platform
	Notices      []Notice
}

// session is one purchase attempt. Every method expects mu to be held.
type session struct {
	mu sync.Mutex

	id      string
	product entities.Product
	step    entities.Step

	customer     entities.CustomerDetails
	outcome      *entities.PaymentOutcome
	confirmation *entities.OrderConfirmation

	// attemptID is the latest gateway attempt; awaiting is true until its
	// outcome arrives.
	attemptID  string
	awaiting   bool
	opening    bool
	submitting bool

	shares     map[entities.Platform]string
	shareOrder []entities.Platform
	notices    []Notice

	ctx     context.Context
	cancel  context.CancelFunc
	now     func() time.Time
	touched time.Time
}

func newSession(ctx context.Context, id string, product entities.Product, now func() time.Time) *session {
	ctx, cancel := context.WithCancel(ctx)
	return &session{
		id:      id,
		product: product,
		step:    entities.StepDetail,
		shares:  make(map[entities.Platform]string),
		ctx:     ctx,
		cancel:  cancel,
		now:     now,
		touched: now(),
	}
}

func (s *session) touch() {
	s.touched = s.now()
}

func (s *session) notify(level NoticeLevel, format string, args ...any) {
	s.notices = append(s.notices, Notice{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		At:      s.now(),
	})
	if len(s.notices) > maxNotices {
		s.notices = slices.Delete(s.notices, 0, len(s.notices)-maxNotices)
	}
}

func (s *session) transitionError(action string) error {
	return &entities.TransitionError{From: s.step, Action: action}
}

func (s *session) submitDetails(customer entities.CustomerDetails) error {
	if s.step != entities.StepDetail {
		return s.transitionError("submit details")
	}
	s.customer = customer
	s.step = entities.StepPayment
	return nil
}

func (s *session) beginPayment() error {
	if s.step != entities.StepPayment {
		return s.transitionError("pay")
	}
	if s.confirmation != nil {
		return entities.ErrAlreadyConfirmed
	}
	if s.opening || s.awaiting || s.submitting || s.awaitingRetry() {
		return entities.ErrPaymentInProgress
	}
	s.opening = true
	s.outcome = nil
	return nil
}

// attach binds a freshly opened attempt. It reports false when the session
// moved on while the attempt was being opened.
func (s *session) attach(attemptID string) bool {
	if !s.opening || s.step != entities.StepPayment {
		return false
	}
	s.opening = false
	s.attemptID = attemptID
	s.awaiting = true
	return true
}

// applyOutcome settles the current attempt. submit is true when the outcome
// must be confirmed with the order API.
func (s *session) applyOutcome(attemptID string, outcome entities.PaymentOutcome) (applied, submit bool) {
	if !s.awaiting || attemptID != s.attemptID || s.step != entities.StepPayment {
		return false, false
	}
	s.awaiting = false

	if outcome.IsSuccess() && !outcome.Complete() {
		outcome = entities.Failed(entities.ReasonIncompleteResponse)
	}
	s.outcome = &outcome

	if outcome.IsSuccess() {
		s.submitting = true
		return true, true
	}

	s.step = entities.StepDetail
	s.notify(NoticeError, "%s", outcome.Reason)
	return true, false
}

// awaitingRetry is true while a successful payment waits for a confirmation
// that failed earlier.
func (s *session) awaitingRetry() bool {
	return s.outcome != nil && s.outcome.IsSuccess() && s.confirmation == nil && !s.submitting
}

func (s *session) beginRetry() error {
	if s.step != entities.StepPayment {
		return s.transitionError("retry confirmation")
	}
	if s.submitting {
		return entities.ErrPaymentInProgress
	}
	if !s.awaitingRetry() {
		return entities.ErrNothingToRetry
	}
	s.submitting = true
	return nil
}

func (s *session) applyConfirmation(conf entities.OrderConfirmation) bool {
	if !s.submitting || s.step != entities.StepPayment {
		return false
	}
	s.submitting = false
	s.confirmation = &conf
	s.step = entities.StepConfirmed
	s.notify(NoticeInfo, "Order %s confirmed", conf.OrderNumber)
	return true
}

func (s *session) failConfirmation(err error) {
	if !s.submitting {
		return
	}
	s.submitting = false
	s.notify(NoticeError, "%s", err)
}

// applySignal fast-forwards to confirmed. cancel names an attempt that the
// signal superseded.
func (s *session) applySignal(sig Signal) (accepted bool, cancel string) {
	if s.step == entities.StepClosed || s.confirmation != nil {
		return false, ""
	}
	if sig.AttemptID != "" && sig.AttemptID != s.attemptID {
		return false, ""
	}

	if s.awaiting {
		cancel = s.attemptID
		s.awaiting = false
	}
	s.opening = false
	s.submitting = false

	conf := sig.Confirmation()
	if conf.ProductID == "" {
		conf.ProductID = s.product.ID
	}
	s.confirmation = &conf
	s.step = entities.StepConfirmed
	s.notify(NoticeInfo, "Order %s confirmed", conf.OrderNumber)
	return true, cancel
}

func (s *session) back() (cancel string, err error) {
	switch s.step {
	case entities.StepPayment:
		if s.submitting {
			return "", entities.ErrPaymentInProgress
		}
		if s.awaiting {
			cancel = s.attemptID
		}
		s.attemptID = ""
		s.awaiting = false
		s.opening = false
		if s.confirmation == nil {
			s.outcome = nil
		}
		s.step = entities.StepDetail
	case entities.StepConfirmed:
		s.step = entities.StepPayment
	case entities.StepShare:
		s.step = entities.StepConfirmed
	default:
		return "", s.transitionError("go back")
	}
	return cancel, nil
}

func (s *session) goToShare() error {
	if s.step != entities.StepConfirmed || s.confirmation == nil {
		return s.transitionError("share")
	}
	s.step = entities.StepShare
	return nil
}

func (s *session) recordShare(platform entities.Platform, url string, at time.Time) {
	if _, ok := s.shares[platform]; ok {
		return
	}
	s.shares[platform] = url
	s.shareOrder = append(s.shareOrder, platform)
	s.confirmation.SharedOnSocial = true
	s.confirmation.SocialShares = append(s.confirmation.SocialShares, entities.ShareRecord{
		Platform: string(platform),
		SharedAt: at,
	})
}

// reset drops everything but the product, returning the attempt to cancel.
func (s *session) reset() (cancel string) {
	if s.awaiting {
		cancel = s.attemptID
	}
	s.step = entities.StepDetail
	s.customer = entities.CustomerDetails{}
	s.outcome = nil
	s.confirmation = nil
	s.attemptID = ""
	s.awaiting = false
	s.opening = false
	s.submitting = false
	s.shares = make(map[entities.Platform]string)
	s.shareOrder = nil
	s.notices = nil
	return cancel
}

func (s *session) close() (cancel string) {
	cancel = s.reset()
	s.step = entities.StepClosed
	return cancel
}

func (s *session) snapshot() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		Product:    s.product,
		Step:       s.step,
		Customer:   s.customer,
		AttemptID:  s.attemptID,
		Submitting: s.opening || s.submitting,
		Shared:     slices.Clone(s.shareOrder),
		Notices:    slices.Clone(s.notices),
	}
	if s.outcome != nil {
		outcome := *s.outcome
		snap.Outcome = &outcome
	}
	if s.confirmation != nil {
		conf := *s.confirmation
		conf.SocialShares = slices.Clone(conf.SocialShares)
		snap.Confirmation = &conf
	}
	return snap
}
