package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
)

// writeServiceError maps domain errors to HTTP statuses. Anything unknown is
// logged and reported as an internal error.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		utils.WriteFieldErrors(w, verr.Unwrap().Error(), verr.Fields)
		return
	}

	switch {
	case errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrSessionNotFound),
		errors.Is(err, entities.ErrReceiptNotFound),
		errors.Is(err, entities.ErrUnknownAttempt):
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, entities.ErrUnknownPlatform):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrAlreadyConfirmed),
		errors.Is(err, entities.ErrPaymentInProgress),
		errors.Is(err, entities.ErrNothingToRetry):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	case errors.Is(err, entities.ErrGatewayUnavailable),
		errors.Is(err, entities.ErrGatewayFailure),
		errors.Is(err, entities.ErrGatewayCancelled),
		errors.Is(err, entities.ErrConfirmationRejected),
		errors.Is(err, entities.ErrConfirmationNetwork),
		errors.Is(err, entities.ErrShareUnavailable):
		logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusBadGateway)

	default:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
