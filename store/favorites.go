package store

import (
	"context"

	"github.com/Kariqs/woven-magic-api/models"
	"gorm.io/gorm/clause"
)

// AddFavoriteIfAbsent is an upsert-or-ignore on (user, product): an existing
// pair is left untouched and no error is reported for it.
func (s *Store) AddFavoriteIfAbsent(ctx context.Context, userID, productID string) error {
	favorite := models.Favorite{UserID: userID, ProductID: productID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(&favorite).Error
}

func (s *Store) RemoveFavorite(ctx context.Context, userID, productID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{}).Error
}

func (s *Store) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
