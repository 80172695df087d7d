package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem references a product by id only. Product is filled by a read-time join.
type CartItem struct {
	ID        string    `json:"_id" gorm:"primaryKey;size:36"`
	CartID    string    `json:"-" gorm:"index;size:36;not null"`
	ProductID string    `json:"productId" gorm:"index;size:36;not null"`
	Product   *Product  `json:"product" gorm:"foreignKey:ProductID;constraint:-"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Position  int       `json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = newID()
	}
	return nil
}

type Cart struct {
	ID        string     `json:"_id" gorm:"primaryKey;size:36"`
	UserID    string     `json:"user" gorm:"uniqueIndex;size:36;not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}

// CartItemInput is one {productId, quantity} pair sent by a client.
type CartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}
