package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultProductDescription = "Handmade flower crochet item"
	DefaultProductCategory    = "crochet"
)

type Product struct {
	ID          string          `json:"_id" gorm:"primaryKey;size:36"`
	Name        string          `json:"name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Description string          `json:"description"`
	Images      datatypes.JSON  `json:"images"`
	Category    string          `json:"category" gorm:"index;size:64"`
	InStock     bool            `json:"inStock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.Description == "" {
		p.Description = DefaultProductDescription
	}
	if p.Category == "" {
		p.Category = DefaultProductCategory
	}
	return nil
}
