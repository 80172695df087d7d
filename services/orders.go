package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/store"
	"github.com/shopspring/decimal"
)

const (
	msgCartEmpty       = "Cart is empty"
	msgOrderNotFound   = "Order not found"
	msgStatusMissing   = "Status is required"
	msgStatusTooLong   = "Status must be at most 64 characters"
	msgProductNotFound = "Product not found"
)

type OrderStore interface {
	FindCart(ctx context.Context, userID string, withProducts bool) (*models.Cart, error)
	SaveCartItems(ctx context.Context, cart *models.Cart) error
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)
	FindOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID, status string) error
}

// OrderNotifier is told about every new order. Its failures never fail the order.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order *models.Order) error
}

// defaultNotifyTimeout caps how long order creation waits on the notifier.
const defaultNotifyTimeout = 3 * time.Second

type OrderService struct {
	store         OrderStore
	notifier      OrderNotifier
	notifyTimeout time.Duration
	logger        *slog.Logger
}

// NewOrderService builds the service. notifier may be nil.
func NewOrderService(store OrderStore, notifier OrderNotifier, logger *slog.Logger) *OrderService {
	return &OrderService{store: store, notifier: notifier, notifyTimeout: defaultNotifyTimeout, logger: logger}
}

// Create turns the user's cart into an order priced at today's product prices,
// then empties the cart. The cart is cleared after the order is committed, so a
// failure in between leaves both the order and the cart in place.
// The notifier runs inline under its own deadline, so a slow notification adds
// at most notifyTimeout to the request.
func (s *OrderService) Create(ctx context.Context, userID string, data models.CreateOrderData) (*models.Order, error) {
	cart, err := s.store.FindCart(ctx, userID, true)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &Error{Kind: ErrEmptyCart, Message: msgCartEmpty}
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, &Error{Kind: ErrEmptyCart, Message: msgCartEmpty}
	}

	order := &models.Order{
		UserID:          userID,
		ShippingAddress: data.ShippingAddress,
		Notes:           data.Notes,
		PaymentMethod:   models.PaymentMethodWhatsApp,
		Status:          models.OrderStatusPending,
		Items:           make([]models.OrderItem, 0, len(cart.Items)),
	}

	total := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, validationError(fmt.Sprintf("Product %s is no longer available", item.ProductID))
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	order.TotalAmount = total

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	cart.Items = []models.CartItem{}
	if err := s.store.SaveCartItems(ctx, cart); err != nil {
		return nil, fmt.Errorf("clear cart after order %s: %w", order.ID, err)
	}

	created, err := s.store.FindOrder(ctx, userID, order.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		err := s.notifier.OrderPlaced(notifyCtx, created)
		cancel()
		if err != nil {
			s.logger.WarnContext(ctx, "order notification failed", "order_id", created.ID, "error", err)
		}
	}
	return created, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.store.ListOrders(ctx, userID)
}

// Get returns NotFound for orders that belong to someone else.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.store.FindOrder(ctx, userID, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFoundError(msgOrderNotFound)
	}
	return order, err
}

func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, validationError(msgStatusMissing)
	}
	if len(status) > models.MaxStatusLength {
		return nil, validationError(msgStatusTooLong)
	}
	if _, err := s.Get(ctx, userID, orderID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateOrderStatus(ctx, userID, orderID, status); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, orderID)
}
