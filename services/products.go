package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/store"
)

type ProductStore interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	FindProduct(ctx context.Context, id string) (*models.Product, error)
}

// ProductCache is a read-through cache for catalog reads.
type ProductCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type ProductService struct {
	store  ProductStore
	cache  ProductCache
	logger *slog.Logger
}

// NewProductService builds the service. cache may be nil.
func NewProductService(store ProductStore, cache ProductCache, logger *slog.Logger) *ProductService {
	return &ProductService{store: store, cache: cache, logger: logger}
}

func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	key := "products:list:" + category
	var products []models.Product
	if s.cached(ctx, key, &products) {
		return products, nil
	}

	products, err := s.store.ListProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, key, products)
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	key := "products:item:" + id
	var product models.Product
	if s.cached(ctx, key, &product) {
		return &product, nil
	}

	found, err := s.store.FindProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFoundError(msgProductNotFound)
	}
	if err != nil {
		return nil, err
	}
	s.remember(ctx, key, found)
	return found, nil
}

func (s *ProductService) cached(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.WarnContext(ctx, "product cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *ProductService) remember(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.WarnContext(ctx, "product cache write failed", "key", key, "error", err)
	}
}
