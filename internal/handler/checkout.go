package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Checkout interface {
	Open(ctx context.Context, productID string) (checkout.Snapshot, error)
	Session(id string) (checkout.Snapshot, error)
	SubmitDetails(id string, form checkout.DetailsForm) (checkout.Snapshot, error)
	Pay(ctx context.Context, id string) (checkout.PayResult, error)
	RetryConfirmation(ctx context.Context, id string) (checkout.Snapshot, error)
	Back(id string) (checkout.Snapshot, error)
	GoToShare(id string) (checkout.Snapshot, error)
	Share(ctx context.Context, id string, platform entities.Platform) (checkout.ShareResult, error)
	Reset(id string) (checkout.Snapshot, error)
	Close(id string) error
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Checkout
}

func NewCheckoutHandler(logger *slog.Logger, svc Checkout) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Open)
		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Close)
			r.Post("/details", h.SubmitDetails)
			r.Post("/pay", h.Pay)
			r.Post("/confirm/retry", h.RetryConfirmation)
			r.Post("/back", h.Back)
			r.Post("/share", h.GoToShare)
			r.Post("/share/{platform}", h.Share)
			r.Post("/reset", h.Reset)
		})
	})
}

// Open открывает сессию оформления заказа.
// @Summary      Открыть сессию оформления
// @Description  Создает сессию покупки выбранного товара, начиная с шага ввода данных
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      OpenSessionRequest  true  "Товар"
// @Success      201  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sessions [post]
func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OpenSessionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	snap, err := h.svc.Open(ctx, req.ProductID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to open session")
		return
	}

	utils.WriteJSON(w, SessionToJSON(snap), http.StatusCreated)
}

// Get возвращает текущее состояние сессии.
// @Summary      Получить сессию
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id} [get]
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Session(chi.URLParam(r, "session_id"))
	h.writeSnapshot(w, r, snap, err, "failed to get session")
}

// SubmitDetails сохраняет данные покупателя.
// @Summary      Ввести данные покупателя
// @Description  Проверяет имя и email и переводит сессию на шаг оплаты
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string          true  "Идентификатор сессии"
// @Param        request     body      DetailsRequest  true  "Данные покупателя"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /sessions/{session_id}/details [post]
func (h *CheckoutHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	var req DetailsRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snap, err := h.svc.SubmitDetails(chi.URLParam(r, "session_id"), checkout.DetailsForm{
		Name:  req.CustomerName,
		Email: req.CustomerEmail,
	})
	h.writeSnapshot(w, r, snap, err, "failed to submit details")
}

// Pay открывает платежную попытку.
// @Summary      Оплатить
// @Description  Создает заказ в платежном шлюзе и возвращает параметры платежного окна. Результат оплаты приходит асинхронно
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  PayResponse
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Оплата уже идет или заказ уже подтвержден"
// @Failure      502  {object}  utils.ErrorResponse "Платежный шлюз недоступен"
// @Router       /sessions/{session_id}/pay [post]
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.svc.Pay(ctx, chi.URLParam(r, "session_id"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to start payment")
		return
	}

	utils.WriteJSON(w, PayResponse{
		AttemptID:   res.AttemptID,
		CheckoutURL: res.CheckoutURL,
		Options:     res.Options,
		Session:     SessionToJSON(res.Session),
	}, http.StatusOK)
}

// RetryConfirmation повторяет подтверждение заказа.
// @Summary      Повторить подтверждение
// @Description  Повторно отправляет успешный платеж на подтверждение без нового списания
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Нечего подтверждать"
// @Failure      502  {object}  utils.ErrorResponse "Подтверждение не удалось"
// @Router       /sessions/{session_id}/confirm/retry [post]
func (h *CheckoutHandler) RetryConfirmation(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.RetryConfirmation(r.Context(), chi.URLParam(r, "session_id"))
	h.writeSnapshot(w, r, snap, err, "failed to retry confirmation")
}

// Back возвращает сессию на предыдущий шаг.
// @Summary      Назад
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /sessions/{session_id}/back [post]
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Back(chi.URLParam(r, "session_id"))
	h.writeSnapshot(w, r, snap, err, "failed to go back")
}

// GoToShare переводит подтвержденный заказ на шаг публикации.
// @Summary      Перейти к публикации
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /sessions/{session_id}/share [post]
func (h *CheckoutHandler) GoToShare(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GoToShare(chi.URLParam(r, "session_id"))
	h.writeSnapshot(w, r, snap, err, "failed to go to share")
}

// Share возвращает ссылку для публикации заказа.
// @Summary      Поделиться заказом
// @Description  Возвращает ссылку для публикации. Повторная публикация на той же площадке возвращает сохраненную ссылку
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Param        platform    path      string  true  "Площадка" Enums(twitter, facebook, linkedin, whatsapp, instagram)
// @Success      200  {object}  ShareResponse
// @Failure      400  {object}  utils.ErrorResponse "Неизвестная площадка"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      502  {object}  utils.ErrorResponse "Ссылка недоступна"
// @Router       /sessions/{session_id}/share/{platform} [post]
func (h *CheckoutHandler) Share(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	platform := entities.Platform(chi.URLParam(r, "platform"))

	res, err := h.svc.Share(ctx, chi.URLParam(r, "session_id"), platform)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to share order")
		return
	}

	utils.WriteJSON(w, ShareResponse{
		ShareURL:      res.URL,
		AlreadyShared: res.AlreadyShared,
		Session:       SessionToJSON(res.Session),
	}, http.StatusOK)
}

// Reset сбрасывает сессию к началу.
// @Summary      Сбросить сессию
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор сессии"
// @Success      200  {object}  Session
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Заказ подтверждается"
// @Router       /sessions/{session_id}/reset [post]
func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Reset(chi.URLParam(r, "session_id"))
	h.writeSnapshot(w, r, snap, err, "failed to reset session")
}

// Close закрывает сессию.
// @Summary      Закрыть сессию
// @Tags         checkout
// @Param        session_id  path  string  true  "Идентификатор сессии"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id} [delete]
func (h *CheckoutHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Close(chi.URLParam(r, "session_id")); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to close session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) writeSnapshot(w http.ResponseWriter, r *http.Request, snap checkout.Snapshot, err error, msg string) {
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, msg)
		return
	}
	utils.WriteJSON(w, SessionToJSON(snap), http.StatusOK)
}
