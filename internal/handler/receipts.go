package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Receipts interface {
	Get(ctx context.Context, orderNumber string) (entities.Receipt, error)
	Latest(ctx context.Context, count int) ([]entities.Receipt, error)
}

type ReceiptHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Receipts
	limit    int
}

func NewReceiptHandler(logger *slog.Logger, svc Receipts, limit int) *ReceiptHandler {
	return &ReceiptHandler{
		logger:   logger.With(slog.String("handler", "receipts")),
		validate: validator.New(),
		svc:      svc,
		limit:    limit,
	}
}

func (h *ReceiptHandler) Init(r chi.Router) {
	r.Get("/receipts", h.List)
	r.Get("/receipts/{order_number}", h.Get)
}

// List возвращает последние подтвержденные заказы.
// @Summary      Журнал заказов
// @Description  Возвращает последние записи журнала, новые первыми
// @Tags         receipts
// @Produce      json
// @Param        limit  query     int  false  "Количество записей"
// @Success      200  {array}   Receipt
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /receipts [get]
func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := h.limit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.WriteFieldErrors(w, "invalid request", map[string]string{"limit": "numeric"})
			return
		}
		limit = n
	}
	if err := h.validate.Var(limit, "gt=0,lte="+strconv.Itoa(h.limit)); err != nil {
		utils.WriteFieldErrors(w, "invalid request", map[string]string{"limit": "range"})
		return
	}

	receipts, err := h.svc.Latest(ctx, limit)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list receipts")
		return
	}

	res := make([]Receipt, 0, len(receipts))
	for _, rc := range receipts {
		res = append(res, ReceiptEntityToJSON(rc))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// Get возвращает запись журнала по номеру заказа.
// @Summary      Получить запись журнала
// @Tags         receipts
// @Produce      json
// @Param        order_number  path      string  true  "Номер заказа"
// @Success      200  {object}  Receipt
// @Failure      404  {object}  utils.ErrorResponse "Запись не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /receipts/{order_number} [get]
func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	receipt, err := h.svc.Get(ctx, orderNumber)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get receipt")
		return
	}
	utils.WriteJSON(w, ReceiptEntityToJSON(receipt), http.StatusOK)
}
