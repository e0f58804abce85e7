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

type Catalog interface {
	List(ctx context.Context, featuredOnly bool) ([]entities.Product, error)
	Get(ctx context.Context, id string) (entities.Product, error)
}

type ContactSubmitter interface {
	Submit(ctx context.Context, msg entities.ContactMessage) (bool, error)
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  Catalog
	contact  ContactSubmitter
}

func NewCatalogHandler(logger *slog.Logger, catalog Catalog, contact ContactSubmitter) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		catalog:  catalog,
		contact:  contact,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{product_id}", h.GetProduct)
	r.Post("/contact", h.Contact)
}

// ListProducts возвращает товары витрины.
// @Summary      Список товаров
// @Tags         catalog
// @Produce      json
// @Param        featured  query     bool  false  "Только избранные"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ErrorResponse "Некорректный параметр"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured := false
	if v := r.URL.Query().Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteError(w, "featured must be a boolean", http.StatusBadRequest)
			return
		}
		featured = b
	}

	products, err := h.catalog.List(ctx, featured)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list products")
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetProduct возвращает товар по ID.
// @Summary      Получить товар
// @Tags         catalog
// @Produce      json
// @Param        product_id  path      string  true  "Идентификатор товара"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{product_id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "product_id")

	if err := h.validate.Var(id, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// Contact отправляет сообщение из формы обратной связи.
// @Summary      Форма обратной связи
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body      ContactRequest  true  "Сообщение"
// @Success      200  {object}  ContactResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /contact [post]
func (h *CatalogHandler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ContactRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ok, err := h.contact.Submit(ctx, entities.ContactMessage{
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to submit contact form")
		return
	}
	utils.WriteJSON(w, ContactResponse{Success: ok}, http.StatusOK)
}
