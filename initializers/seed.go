package initializers

import (
	"fmt"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type seedProduct struct {
	name     string
	price    int64
	kind     string
	image    string
	category string
}

var seedCatalog = []seedProduct{
	{"Peony Puff Keychain", 249, "keychain", "Image1.jpeg", "accessories"},
	{"Rosy Blossom Coaster (Set of 4)", 499, "coaster set", "Image2.jpeg", "home"},
	{"Sunflower Headband", 349, "headband", "Image3.jpeg", "accessories"},
	{"Lavender Dream Pouch", 399, "pouch", "Image4.jpeg", "accessories"},
	{"Blossom Baby Booties", 599, "baby booties", "Image5.jpeg", "baby"},
	{"Daisy Hanging Mobile", 799, "hanging mobile", "Image6.jpeg", "home"},
}

// SeedProducts returns the starter catalog loaded by cmd/seed.
func SeedProducts() []models.Product {
	products := make([]models.Product, 0, len(seedCatalog))
	for _, p := range seedCatalog {
		products = append(products, models.Product{
			Name:        p.name,
			Price:       decimal.NewFromInt(p.price),
			Description: fmt.Sprintf("Handmade flower crochet %s, cute & cozy", p.kind),
			Images:      datatypes.JSON(fmt.Sprintf(`[%q,%q]`, p.image, p.image)),
			Category:    p.category,
			InStock:     true,
		})
	}
	return products
}
