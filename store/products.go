package store

import (
	"context"

	"github.com/Kariqs/woven-magic-api/models"
	"gorm.io/gorm"
)

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Create(product).Error)
}

// ReplaceProducts swaps the whole catalog for products in one transaction.
func (s *Store) ReplaceProducts(ctx context.Context, products []models.Product) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
	return deleted, translate(err)
}

// ListProducts returns the catalog newest first, optionally narrowed to one category.
func (s *Store) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) FindProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// FindProducts returns the products that exist among ids, keyed by id.
func (s *Store) FindProducts(ctx context.Context, ids []string) (map[string]models.Product, error) {
	found := make(map[string]models.Product, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		found[p.ID] = p
	}
	return found, nil
}
