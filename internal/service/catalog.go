package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
)

type ProductSource interface {
	ListProducts(ctx context.Context, featuredOnly bool) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type catalogService struct {
	logger *slog.Logger
	source ProductSource
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, source ProductSource, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		source: source,
		cache:  cache,
	}
}

func listKey(featuredOnly bool) string {
	if featuredOnly {
		return "products:featured"
	}
	return "products:all"
}

func productKey(id string) string {
	return "product:" + id
}

func (s *catalogService) List(ctx context.Context, featuredOnly bool) ([]entities.Product, error) {
	key := listKey(featuredOnly)
	if data, ok := s.cache.Get(key); ok {
		var catalog entities.Catalog
		if err := catalog.Unmarshal(data); err == nil {
			return catalog, nil
		}
		s.logger.Warn("dropping unreadable cache entry", slog.String("key", key))
		s.cache.Delete(key)
	}

	var products []entities.Product
	fn := func() error {
		var err error
		products, err = s.source.ListProducts(ctx, featuredOnly)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	data, err := entities.Catalog(products).Marshal()
	if err != nil {
		s.logger.Error("failed to marshal catalog", slog.Any("error", err))
		return products, nil
	}
	s.cache.Set(key, data)
	return products, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (entities.Product, error) {
	key := productKey(id)
	if data, ok := s.cache.Get(key); ok {
		var product entities.Product
		if err := product.Unmarshal(data); err == nil {
			return product, nil
		}
		s.logger.Warn("dropping unreadable cache entry", slog.String("key", key))
		s.cache.Delete(key)
	}

	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.source.GetProduct(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}

	s.store(product)
	return product, nil
}

// WarmUp fills the cache with the full listing and each product in it.
func (s *catalogService) WarmUp(ctx context.Context) error {
	products, err := s.List(ctx, false)
	if err != nil {
		return err
	}
	for _, p := range products {
		s.store(p)
	}
	s.logger.Info("catalog cache warmed up", slog.Int("products", len(products)))
	return nil
}

func (s *catalogService) store(p entities.Product) {
	data, err := p.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal product", slog.String("product_id", p.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(productKey(p.ID), data)
}
