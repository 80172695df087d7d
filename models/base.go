package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as plain numbers, the way the storefront client reads them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Column widths shared by the models and the checks in front of them.
const (
	MaxIDLength     = 36
	MaxStatusLength = 64
)

func newID() string {
	return uuid.NewString()
}
