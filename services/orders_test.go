package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	orderIDs []string
	err      error
}

func (n *recordingNotifier) OrderPlaced(ctx context.Context, order *models.Order) error {
	n.orderIDs = append(n.orderIDs, order.ID)
	return n.err
}

func TestOrderService_CreateSnapshotsPricesAndClearsCart(t *testing.T) {
	st, db := setupTestDB(t)
	carts := NewCartService(st)
	notifier := &recordingNotifier{}
	orders := NewOrderService(st, notifier, discardLogger())
	ctx := context.Background()

	p1 := seedProduct(t, st, "Rose", 100)
	p2 := seedProduct(t, st, "Tulip", 50)
	_, err := carts.MergeItems(ctx, "u1", []models.CartItemInput{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 1},
	})
	require.NoError(t, err)

	order, err := orders.Create(ctx, "u1", models.CreateOrderData{ShippingAddress: "12 Lake Road", Notes: "gift wrap"})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(250)), "total was %s", order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentMethodWhatsApp, order.PaymentMethod)
	assert.Equal(t, "12 Lake Road", order.ShippingAddress)
	require.Len(t, order.Items, 2)
	assert.Equal(t, p1.ID, order.Items[0].ProductID)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, order.Items[0].Product)
	assert.Equal(t, []string{order.ID}, notifier.orderIDs)

	cart, err := carts.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p1.ID).Update("price", decimal.NewFromInt(999)).Error)
	reloaded, err := orders.Get(ctx, "u1", order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Items[0].Price.Equal(decimal.NewFromInt(100)), "order keeps the price it was placed at")
	assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromInt(250)))
}

func TestOrderService_CreateWithEmptyCart(t *testing.T) {
	st, _ := setupTestDB(t)
	carts := NewCartService(st)
	orders := NewOrderService(st, nil, discardLogger())
	ctx := context.Background()

	_, err := orders.Create(ctx, "u1", models.CreateOrderData{})
	assert.ErrorIs(t, err, ErrEmptyCart, "no cart at all")

	_, err = carts.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	_, err = orders.Create(ctx, "u1", models.CreateOrderData{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, msgCartEmpty, ErrorMessage(err))

	list, err := orders.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOrderService_CreateRejectsMissingProduct(t *testing.T) {
	st, _ := setupTestDB(t)
	carts := NewCartService(st)
	orders := NewOrderService(st, nil, discardLogger())
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "u1", models.CartItemInput{ProductID: "deleted-product", Quantity: 1})
	require.NoError(t, err)

	_, err = orders.Create(ctx, "u1", models.CreateOrderData{})
	assert.ErrorIs(t, err, ErrValidation)

	cart, err := carts.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "cart is untouched when the order fails")
}

func TestOrderService_NotifierFailureDoesNotFailOrder(t *testing.T) {
	st, _ := setupTestDB(t)
	carts := NewCartService(st)
	notifier := &recordingNotifier{err: errors.New("whatsapp down")}
	orders := NewOrderService(st, notifier, discardLogger())
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)

	_, err := carts.AddItem(ctx, "u1", models.CartItemInput{ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orders.Create(ctx, "u1", models.CreateOrderData{})
	require.NoError(t, err)
	assert.Len(t, notifier.orderIDs, 1)
	assert.NotEmpty(t, order.ID)
}

type slowNotifier struct{}

func (slowNotifier) OrderPlaced(ctx context.Context, order *models.Order) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestOrderService_SlowNotifierIsCutOff(t *testing.T) {
	st, _ := setupTestDB(t)
	carts := NewCartService(st)
	orders := NewOrderService(st, slowNotifier{}, discardLogger())
	orders.notifyTimeout = 50 * time.Millisecond
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)

	_, err := carts.AddItem(ctx, "u1", models.CartItemInput{ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)

	start := time.Now()
	order, err := orders.Create(ctx, "u1", models.CreateOrderData{})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestOrderService_OwnershipAndStatus(t *testing.T) {
	st, _ := setupTestDB(t)
	carts := NewCartService(st)
	orders := NewOrderService(st, nil, discardLogger())
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)

	_, err := carts.AddItem(ctx, "u1", models.CartItemInput{ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Create(ctx, "u1", models.CreateOrderData{})
	require.NoError(t, err)

	_, err = orders.Get(ctx, "u2", order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = orders.UpdateStatus(ctx, "u2", order.ID, "shipped")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = orders.UpdateStatus(ctx, "u1", order.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = orders.UpdateStatus(ctx, "u1", order.ID, strings.Repeat("s", 65))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgStatusTooLong, ErrorMessage(err))

	updated, err := orders.UpdateStatus(ctx, "u1", order.ID, "packed with love")
	require.NoError(t, err)
	assert.Equal(t, "packed with love", updated.Status)

	mine, err := orders.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := orders.ListForUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
