package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type PaymentCallbacks interface {
	HandleSuccess(ctx context.Context, cb gateway.Callback) error
	HandleDismiss(attemptID string) error
	HandleFailure(attemptID, description string) error
}

type RedirectCompleter interface {
	CompleteRedirect(ctx context.Context, cb gateway.Callback) error
}

// GatewayHandler receives reports from the hosted payment UI.
type GatewayHandler struct {
	logger    *slog.Logger
	callbacks PaymentCallbacks
	redirects RedirectCompleter
}

func NewGatewayHandler(logger *slog.Logger, callbacks PaymentCallbacks, redirects RedirectCompleter) *GatewayHandler {
	return &GatewayHandler{
		logger:    logger.With(slog.String("handler", "gateway")),
		callbacks: callbacks,
		redirects: redirects,
	}
}

func (h *GatewayHandler) Init(r chi.Router) {
	r.Route("/gateway", func(r chi.Router) {
		r.Post("/callback", h.Callback)
		r.Post("/dismiss", h.Dismiss)
		r.Post("/failed", h.Failed)
		r.Get("/redirect", h.Redirect)
	})
}

// Callback принимает отчет об успешной оплате.
// @Summary      Успешная оплата
// @Description  Принимает идентификаторы платежа от платежного окна. Повторный отчет по той же попытке игнорируется
// @Tags         gateway
// @Accept       json
// @Param        attempt_id  query     string           false  "Идентификатор попытки"
// @Param        request     body      GatewayCallback  true   "Отчет платежного окна"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Попытка не найдена"
// @Router       /gateway/callback [post]
func (h *GatewayHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cb, err := decodeCallback(r)
	if err != nil || cb.AttemptID == "" {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.callbacks.HandleSuccess(ctx, cb); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to handle payment success")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Dismiss принимает закрытие платежного окна.
// @Summary      Окно оплаты закрыто
// @Tags         gateway
// @Accept       json
// @Param        attempt_id  query     string          false  "Идентификатор попытки"
// @Param        request     body      GatewayDismiss  false  "Попытка"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Попытка не найдена"
// @Router       /gateway/dismiss [post]
func (h *GatewayHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	var req GatewayDismiss
	if isJSON(r) {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	if req.AttemptID == "" {
		req.AttemptID = r.URL.Query().Get("attempt_id")
	}
	if req.AttemptID == "" {
		utils.WriteError(w, "attempt id is required", http.StatusBadRequest)
		return
	}

	if err := h.callbacks.HandleDismiss(req.AttemptID); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to handle dismissal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Failed принимает отказ в оплате.
// @Summary      Оплата не прошла
// @Tags         gateway
// @Accept       json
// @Param        attempt_id  query     string          false  "Идентификатор попытки"
// @Param        request     body      GatewayFailure  true   "Описание ошибки"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Попытка не найдена"
// @Router       /gateway/failed [post]
func (h *GatewayHandler) Failed(w http.ResponseWriter, r *http.Request) {
	var req GatewayFailure
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.AttemptID == "" {
		req.AttemptID = r.URL.Query().Get("attempt_id")
	}
	if req.AttemptID == "" {
		utils.WriteError(w, "attempt id is required", http.StatusBadRequest)
		return
	}

	if err := h.callbacks.HandleFailure(req.AttemptID, req.Error.Description); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to handle payment failure")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Redirect завершает оплату, пришедшую через редирект.
// @Summary      Завершение оплаты через редирект
// @Description  Проверяет платеж, подтверждает заказ и передает результат в сессию через почтовый ящик
// @Tags         gateway
// @Produce      json
// @Param        attempt_id           query  string  true  "Идентификатор попытки"
// @Param        razorpay_payment_id  query  string  true  "Идентификатор платежа"
// @Param        razorpay_order_id    query  string  true  "Идентификатор заказа шлюза"
// @Param        razorpay_signature   query  string  true  "Подпись"
// @Success      200  {object}  MessageResponse "Оплата завершена"
// @Failure      400  {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Попытка не найдена"
// @Failure      502  {object}  utils.ErrorResponse "Оплата не подтверждена"
// @Router       /gateway/redirect [get]
func (h *GatewayHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	cb := gateway.Callback{
		AttemptID: q.Get("attempt_id"),
		PaymentID: q.Get("razorpay_payment_id"),
		OrderID:   q.Get("razorpay_order_id"),
		Signature: q.Get("razorpay_signature"),
	}
	if cb.AttemptID == "" {
		utils.WriteError(w, "attempt id is required", http.StatusBadRequest)
		return
	}

	if err := h.redirects.CompleteRedirect(ctx, cb); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to complete redirect")
		return
	}
	utils.WriteJSON(w, MessageResponse{Message: "payment completed"}, http.StatusOK)
}

// decodeCallback reads either a JSON body or the form post the hosted UI sends.
func decodeCallback(r *http.Request) (gateway.Callback, error) {
	var req GatewayCallback
	if isJSON(r) {
		if err := utils.DecodeBody(r, &req); err != nil {
			return gateway.Callback{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return gateway.Callback{}, err
		}
		req = GatewayCallback{
			AttemptID: r.PostForm.Get("attemptId"),
			PaymentID: r.PostForm.Get("razorpay_payment_id"),
			OrderID:   r.PostForm.Get("razorpay_order_id"),
			Signature: r.PostForm.Get("razorpay_signature"),
		}
	}
	if req.AttemptID == "" {
		req.AttemptID = r.URL.Query().Get("attempt_id")
	}

	return gateway.Callback{
		AttemptID: req.AttemptID,
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Signature: req.Signature,
	}, nil
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
