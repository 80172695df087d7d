package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProductJSON(t *testing.T) {
	product := Product{
		ID:     "p1",
		Name:   "Rose",
		Price:  decimal.RequireFromString("249.50"),
		Images: datatypes.JSON(`["/images/rose-1.jpg","/images/rose-2.jpg"]`),
	}

	data, err := json.Marshal(product)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "p1", out["_id"])
	assert.Equal(t, 249.5, out["price"], "money is a bare JSON number")
	assert.Equal(t, []any{"/images/rose-1.jpg", "/images/rose-2.jpg"}, out["images"])
}

func TestUserJSONHidesPassword(t *testing.T) {
	data, err := json.Marshal(User{ID: "u1", Name: "Meera", Email: "m@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.Contains(t, string(data), `"_id":"u1"`)
}

func TestBeforeCreateAssignsIDsAndDefaults(t *testing.T) {
	product := &Product{Name: "Rose"}
	require.NoError(t, product.BeforeCreate(nil))
	assert.Len(t, product.ID, 36)
	assert.Equal(t, DefaultProductDescription, product.Description)
	assert.Equal(t, DefaultProductCategory, product.Category)

	item := &CartItem{ID: "keep"}
	require.NoError(t, item.BeforeCreate(nil))
	assert.Equal(t, "keep", item.ID)
}
