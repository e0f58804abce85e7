package entities

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrValidation = errors.New("invalid input")

	ErrGatewayUnavailable = errors.New("gateway script unavailable")
	ErrGatewayFailure     = errors.New("payment failed")
	ErrGatewayCancelled   = errors.New("payment was cancelled")

	ErrConfirmationRejected = errors.New("order confirmation rejected")
	ErrConfirmationNetwork  = errors.New("order confirmation request failed")

	ErrShareUnavailable = errors.New("share url unavailable")

	ErrProductNotFound   = errors.New("product not found")
	ErrSessionNotFound   = errors.New("checkout session not found")
	ErrReceiptNotFound   = errors.New("receipt not found")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrAlreadyConfirmed  = errors.New("order already confirmed")
	ErrPaymentInProgress = errors.New("payment already in progress")
	ErrNothingToRetry    = errors.New("no successful payment awaiting confirmation")
	ErrUnknownPlatform   = errors.New("unknown share platform")
	ErrUnknownAttempt    = errors.New("unknown payment attempt")
)

// ValidationError carries field-level messages for the form that failed.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// TransitionError reports a step change the checkout state machine does not allow.
type TransitionError struct {
	From   Step
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %q", ErrInvalidTransition, e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
