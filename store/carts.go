package store

import (
	"context"
	"time"

	"github.com/Kariqs/woven-magic-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func orderedCartItems(db *gorm.DB) *gorm.DB {
	return db.Order("position asc, created_at asc")
}

// FindCart loads the user's cart. withProducts joins each item's product at read time.
func (s *Store) FindCart(ctx context.Context, userID string, withProducts bool) (*models.Cart, error) {
	query := s.db.WithContext(ctx).Preload("Items", orderedCartItems)
	if withProducts {
		query = query.Preload("Items.Product")
	}

	var cart models.Cart
	if err := query.First(&cart, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// EnsureCart creates an empty cart for the user unless one exists. Concurrent
// callers never see a unique-index violation.
func (s *Store) EnsureCart(ctx context.Context, userID string) error {
	cart := models.Cart{UserID: userID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(&cart).Error
}

// SaveCartItems replaces the stored item list of cart with cart.Items, keeping
// item ids and their order.
func (s *Store) SaveCartItems(ctx context.Context, cart *models.Cart) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			cart.Items[i].CartID = cart.ID
			cart.Items[i].Position = i
		}
		if len(cart.Items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&cart.Items).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("updated_at", time.Now()).Error
	})
}
