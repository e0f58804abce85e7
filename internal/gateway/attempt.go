package gateway

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
)

// Attempt is one opening of the hosted payment UI. It resolves exactly once.
type Attempt struct {
	ID          string
	Request     Request
	Options     Options
	CheckoutURL string

	once    sync.Once
	done    chan struct{}
	outcome entities.PaymentOutcome

	claimed atomic.Bool
}

func newAttempt(id string, req Request) *Attempt {
	return &Attempt{
		ID:      id,
		Request: req,
		done:    make(chan struct{}),
	}
}

// Resolve records the outcome. It reports false when the attempt was
// already resolved and the outcome was dropped.
func (a *Attempt) Resolve(outcome entities.PaymentOutcome) bool {
	resolved := false
	a.once.Do(func() {
		a.outcome = outcome
		resolved = true
		close(a.done)
	})
	return resolved
}

func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

func (a *Attempt) Resolved() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

func (a *Attempt) Outcome() (entities.PaymentOutcome, bool) {
	if !a.Resolved() {
		return entities.PaymentOutcome{}, false
	}
	return a.outcome, true
}

func (a *Attempt) Wait(ctx context.Context) (entities.PaymentOutcome, error) {
	select {
	case <-a.done:
		return a.outcome, nil
	case <-ctx.Done():
		return entities.PaymentOutcome{}, ctx.Err()
	}
}

// claim lets only the first success report through.
func (a *Attempt) claim() bool {
	return a.claimed.CompareAndSwap(false, true)
}
