package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetOrCreate(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, first.Items)

	second, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCartService_MergeItems(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)
	p2 := seedProduct(t, st, "Tulip", 499)

	_, err := svc.AddItem(ctx, "u1", models.CartItemInput{ProductID: p1.ID, Quantity: 3})
	require.NoError(t, err)

	cart, err := svc.MergeItems(ctx, "u1", []models.CartItemInput{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: -5},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	assert.Equal(t, p1.ID, cart.Items[0].ProductID)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, p2.ID, cart.Items[1].ProductID)
	assert.Equal(t, 1, cart.Items[1].Quantity, "non-positive quantities default to 1")
	require.NotNil(t, cart.Items[1].Product)
	assert.Equal(t, "Tulip", cart.Items[1].Product.Name)
}

func TestCartService_MergeItemsFoldsDuplicateInputs(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)
	p1 := seedProduct(t, st, "Rose", 249)

	cart, err := svc.MergeItems(context.Background(), "u1", []models.CartItemInput{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p1.ID},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartService_AddItemRequiresProductID(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)

	_, err := svc.AddItem(context.Background(), "u1", models.CartItemInput{ProductID: "  ", Quantity: 1})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgProductIDMissing, ErrorMessage(err))

	_, err = svc.MergeItems(context.Background(), "u1", []models.CartItemInput{{ProductID: strings.Repeat("a", 37)}})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgProductIDInvalid, ErrorMessage(err))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)

	_, err := svc.UpdateQuantity(ctx, "u1", "any", 2)
	assert.ErrorIs(t, err, ErrNotFound, "no cart yet")

	cart, err := svc.AddItem(ctx, "u1", models.CartItemInput{ProductID: p1.ID, Quantity: 2})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateQuantity(ctx, "u1", itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, "u1", itemID, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, "u1", itemID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	_, err = svc.UpdateQuantity(ctx, "u1", "unknown", 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, msgCartItemNotFound, ErrorMessage(err))
}

func TestCartService_RemoveItemIsIdempotent(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)
	p2 := seedProduct(t, st, "Tulip", 499)

	_, err := svc.RemoveItem(ctx, "u1", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := svc.MergeItems(ctx, "u1", []models.CartItemInput{{ProductID: p1.ID}, {ProductID: p2.ID}})
	require.NoError(t, err)

	cart, err = svc.RemoveItem(ctx, "u1", cart.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, p2.ID, cart.Items[0].ProductID)

	cart, err = svc.RemoveItem(ctx, "u1", "not-there")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_Clear(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewCartService(st)
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)

	_, err := svc.Clear(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	before, err := svc.AddItem(ctx, "u1", models.CartItemInput{ProductID: p1.ID})
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, before.ID, cart.ID, "clearing keeps the cart")

	again, err := svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, again.Items)
	assert.Equal(t, before.ID, again.ID)
}

func TestMergeItems(t *testing.T) {
	tests := []struct {
		name   string
		items  []models.CartItem
		inputs []models.CartItemInput
		want   map[string]int
	}{
		{
			name:   "appends new products",
			inputs: []models.CartItemInput{{ProductID: "p1", Quantity: 2}},
			want:   map[string]int{"p1": 2},
		},
		{
			name:   "adds to existing quantity",
			items:  []models.CartItem{{ID: "i1", ProductID: "p1", Quantity: 3}},
			inputs: []models.CartItemInput{{ProductID: "p1", Quantity: 1}},
			want:   map[string]int{"p1": 4},
		},
		{
			name:   "missing quantity counts as one",
			items:  []models.CartItem{{ID: "i1", ProductID: "p1", Quantity: 1}},
			inputs: []models.CartItemInput{{ProductID: "p1"}, {ProductID: "p2", Quantity: -2}},
			want:   map[string]int{"p1": 2, "p2": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeItems(tt.items, tt.inputs)
			require.Len(t, got, len(tt.want))
			for _, item := range got {
				assert.Equal(t, tt.want[item.ProductID], item.Quantity, item.ProductID)
			}
		})
	}
}
