package services

import (
	"context"
	"log/slog"

	"github.com/Kariqs/woven-magic-api/models"
)

type FavoriteStore interface {
	AddFavoriteIfAbsent(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
}

type FavoriteService struct {
	store  FavoriteStore
	logger *slog.Logger
}

func NewFavoriteService(store FavoriteStore, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{store: store, logger: logger}
}

func (s *FavoriteService) Add(ctx context.Context, userID, productID string) ([]models.Product, error) {
	if err := checkProductID(productID); err != nil {
		return nil, err
	}
	if err := s.store.AddFavoriteIfAbsent(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

// Merge adds every id it can. A failing id is logged and skipped.
func (s *FavoriteService) Merge(ctx context.Context, userID string, productIDs []string) ([]models.Product, error) {
	for _, productID := range productIDs {
		if checkProductID(productID) != nil {
			continue
		}
		if err := s.store.AddFavoriteIfAbsent(ctx, userID, productID); err != nil {
			s.logger.WarnContext(ctx, "skipping favorite during merge",
				"user_id", userID, "product_id", productID, "error", err)
		}
	}
	return s.List(ctx, userID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID, productID string) ([]models.Product, error) {
	if err := s.store.RemoveFavorite(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

// List returns each favorited product once, skipping products that no longer exist.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]models.Product, error) {
	favorites, err := s.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(favorites))
	seen := make(map[string]struct{}, len(favorites))
	for _, fav := range favorites {
		if fav.Product == nil {
			continue
		}
		if _, ok := seen[fav.ProductID]; ok {
			continue
		}
		seen[fav.ProductID] = struct{}{}
		products = append(products, *fav.Product)
	}
	return products, nil
}
