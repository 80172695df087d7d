package services

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/store"
)

const (
	msgCartNotFound     = "Cart not found"
	msgCartItemNotFound = "Item not found"
	msgProductIDMissing = "Product id is required"
	msgProductIDInvalid = "Product id is invalid"
)

type CartStore interface {
	FindCart(ctx context.Context, userID string, withProducts bool) (*models.Cart, error)
	EnsureCart(ctx context.Context, userID string) error
	SaveCartItems(ctx context.Context, cart *models.Cart) error
}

// CartService keeps one cart per user. Concurrent writers for the same user
// are not serialized: the last save wins.
type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

// GetOrCreate returns the user's cart with products joined, creating an empty one if needed.
func (s *CartService) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.store.FindCart(ctx, userID, true)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if err := s.store.EnsureCart(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.FindCart(ctx, userID, true)
}

func (s *CartService) AddItem(ctx context.Context, userID string, input models.CartItemInput) (*models.Cart, error) {
	return s.MergeItems(ctx, userID, []models.CartItemInput{input})
}

// MergeItems folds inputs into the cart. A product already in the cart has its
// quantity increased, anything else is appended.
func (s *CartService) MergeItems(ctx context.Context, userID string, inputs []models.CartItemInput) (*models.Cart, error) {
	for _, in := range inputs {
		if err := checkProductID(in.ProductID); err != nil {
			return nil, err
		}
	}

	return s.mutate(ctx, userID, true, func(cart *models.Cart) error {
		cart.Items = mergeItems(cart.Items, inputs)
		return nil
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error) {
	return s.mutate(ctx, userID, false, func(cart *models.Cart) error {
		idx := slices.IndexFunc(cart.Items, func(item models.CartItem) bool { return item.ID == itemID })
		if idx < 0 {
			return notFoundError(msgCartItemNotFound)
		}
		cart.Items[idx].Quantity = max(1, quantity)
		return nil
	})
}

// RemoveItem is a no-op for an item that is not in the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, error) {
	return s.mutate(ctx, userID, false, func(cart *models.Cart) error {
		cart.Items = slices.DeleteFunc(cart.Items, func(item models.CartItem) bool { return item.ID == itemID })
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	return s.mutate(ctx, userID, false, func(cart *models.Cart) error {
		cart.Items = []models.CartItem{}
		return nil
	})
}

// mutate loads the cart, applies change, persists the items and re-reads the
// cart with products joined.
func (s *CartService) mutate(ctx context.Context, userID string, create bool, change func(*models.Cart) error) (*models.Cart, error) {
	cart, err := s.store.FindCart(ctx, userID, false)
	if errors.Is(err, store.ErrNotFound) {
		if !create {
			return nil, notFoundError(msgCartNotFound)
		}
		if err := s.store.EnsureCart(ctx, userID); err != nil {
			return nil, err
		}
		cart, err = s.store.FindCart(ctx, userID, false)
	}
	if err != nil {
		return nil, err
	}

	if err := change(cart); err != nil {
		return nil, err
	}
	if err := s.store.SaveCartItems(ctx, cart); err != nil {
		return nil, err
	}
	return s.store.FindCart(ctx, userID, true)
}

func mergeItems(items []models.CartItem, inputs []models.CartItemInput) []models.CartItem {
	for _, in := range inputs {
		quantity := max(1, in.Quantity)
		idx := slices.IndexFunc(items, func(item models.CartItem) bool { return item.ProductID == in.ProductID })
		if idx >= 0 {
			items[idx].Quantity += quantity
			continue
		}
		items = append(items, models.CartItem{ProductID: in.ProductID, Quantity: quantity})
	}
	return items
}

func checkProductID(productID string) error {
	switch {
	case strings.TrimSpace(productID) == "":
		return validationError(msgProductIDMissing)
	case len(productID) > models.MaxIDLength:
		return validationError(msgProductIDInvalid)
	}
	return nil
}
