package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/store"
	"github.com/Kariqs/woven-magic-api/utils"
)

type CheckoutStore interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindProducts(ctx context.Context, ids []string) (map[string]models.Product, error)
}

// CheckoutService builds WhatsApp handoffs for orders and guest carts, and
// notifies the shop about new orders.
type CheckoutService struct {
	store    CheckoutStore
	whatsapp *utils.WhatsApp
}

func NewCheckoutService(store CheckoutStore, whatsapp *utils.WhatsApp) *CheckoutService {
	return &CheckoutService{store: store, whatsapp: whatsapp}
}

func (s *CheckoutService) OrderLink(ctx context.Context, order *models.Order) (utils.CheckoutLink, error) {
	summary, err := s.orderSummary(ctx, order)
	if err != nil {
		return utils.CheckoutLink{}, err
	}
	return s.whatsapp.Link(summary), nil
}

// GuestLink prices a guest cart from the catalog. Unknown products are left out.
func (s *CheckoutService) GuestLink(ctx context.Context, name string, items []models.CartItemInput) (utils.CheckoutLink, error) {
	merged := mergeItems(nil, items)
	ids := make([]string, 0, len(merged))
	for _, item := range merged {
		ids = append(ids, item.ProductID)
	}
	products, err := s.store.FindProducts(ctx, ids)
	if err != nil {
		return utils.CheckoutLink{}, err
	}

	summary := utils.CheckoutSummary{CustomerName: strings.TrimSpace(name)}
	for _, item := range merged {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		summary.Lines = append(summary.Lines, utils.CheckoutLine{
			Name:     product.Name,
			Quantity: item.Quantity,
			Price:    product.Price,
		})
	}
	if len(summary.Lines) == 0 {
		return utils.CheckoutLink{}, &Error{Kind: ErrEmptyCart, Message: msgCartEmpty}
	}
	return s.whatsapp.Link(summary), nil
}

func (s *CheckoutService) OrderPlaced(ctx context.Context, order *models.Order) error {
	if !s.whatsapp.NotificationsEnabled() {
		return nil
	}
	summary, err := s.orderSummary(ctx, order)
	if err != nil {
		return err
	}
	return s.whatsapp.NotifyShop(ctx, summary)
}

func (s *CheckoutService) orderSummary(ctx context.Context, order *models.Order) (utils.CheckoutSummary, error) {
	summary := utils.CheckoutSummary{OrderID: order.ID}

	user, err := s.store.FindUserByID(ctx, order.UserID)
	switch {
	case err == nil:
		summary.CustomerName = user.Name
	case !errors.Is(err, store.ErrNotFound):
		return summary, err
	}

	for _, item := range order.Items {
		name := item.ProductID
		if item.Product != nil {
			name = item.Product.Name
		}
		summary.Lines = append(summary.Lines, utils.CheckoutLine{
			Name:     name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return summary, nil
}
