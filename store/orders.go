package store

import (
	"context"

	"github.com/Kariqs/woven-magic-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func orderedOrderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			order.Items[i].Position = i
		}
		if len(order.Items) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(&order.Items).Error
	})
}

// ListOrders returns the user's orders newest first with products joined.
func (s *Store) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Preload("Items", orderedOrderItems).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindOrder only matches an order owned by userID.
func (s *Store) FindOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", orderedOrderItems).
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// UpdateOrderStatus is scoped to the owner. Callers check existence with FindOrder,
// since MySQL reports zero affected rows for an unchanged value.
func (s *Store) UpdateOrderStatus(ctx context.Context, userID, orderID, status string) error {
	return s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("status", status).Error
}
