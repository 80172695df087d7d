package models

import (
	"time"

	"gorm.io/gorm"
)

type Favorite struct {
	ID        string    `json:"_id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user" gorm:"uniqueIndex:idx_favorite_user_product;size:36;not null"`
	ProductID string    `json:"productId" gorm:"uniqueIndex:idx_favorite_user_product;size:36;not null"`
	Product   *Product  `json:"product" gorm:"foreignKey:ProductID;constraint:-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = newID()
	}
	return nil
}
