package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	PaymentMethodWhatsApp = "WhatsApp"
)

type Order struct {
	ID              string          `json:"_id" gorm:"primaryKey;size:36"`
	UserID          string          `json:"user" gorm:"index;size:36;not null"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	ShippingAddress string          `json:"shippingAddress"`
	Notes           string          `json:"notes"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"size:32"`
	Status          string          `json:"status" gorm:"size:64;default:pending"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = newID()
	}
	return nil
}

// OrderItem freezes the unit price at the moment the order was placed.
type OrderItem struct {
	ID        string          `json:"_id" gorm:"primaryKey;size:36"`
	OrderID   string          `json:"-" gorm:"index;size:36;not null"`
	ProductID string          `json:"productId" gorm:"size:36;not null"`
	Product   *Product        `json:"product" gorm:"foreignKey:ProductID;constraint:-"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Position  int             `json:"-"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = newID()
	}
	return nil
}

type CreateOrderData struct {
	ShippingAddress string `json:"shippingAddress"`
	Notes           string `json:"notes"`
}

type OrderStatusData struct {
	Status string `json:"status" binding:"required,notblank,max=64"`
}
