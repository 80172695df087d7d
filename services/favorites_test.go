package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteStore struct {
	added     []string
	favorites []models.Favorite
	failOn    string
}

func (f *fakeFavoriteStore) AddFavoriteIfAbsent(ctx context.Context, userID, productID string) error {
	if productID == f.failOn {
		return errors.New("insert failed")
	}
	f.added = append(f.added, productID)
	return nil
}

func (f *fakeFavoriteStore) RemoveFavorite(ctx context.Context, userID, productID string) error {
	return nil
}

func (f *fakeFavoriteStore) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	return f.favorites, nil
}

func TestFavoriteService_AddAndMergeWithoutDuplicates(t *testing.T) {
	st, _ := setupTestDB(t)
	svc := NewFavoriteService(st, discardLogger())
	ctx := context.Background()
	p1 := seedProduct(t, st, "Rose", 249)
	p2 := seedProduct(t, st, "Tulip", 499)

	products, err := svc.Add(ctx, "u1", p1.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)

	products, err = svc.Merge(ctx, "u1", []string{p1.ID, p2.ID, p2.ID, ""})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, p1.ID, products[0].ID)
	assert.Equal(t, p2.ID, products[1].ID)

	products, err = svc.Add(ctx, "u1", p1.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = svc.Remove(ctx, "u1", p1.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p2.ID, products[0].ID)

	products, err = svc.Remove(ctx, "u1", p1.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestFavoriteService_AddRequiresProductID(t *testing.T) {
	svc := NewFavoriteService(&fakeFavoriteStore{}, discardLogger())

	_, err := svc.Add(context.Background(), "u1", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add(context.Background(), "u1", strings.Repeat("p", 40))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFavoriteService_MergeSkipsFailures(t *testing.T) {
	fake := &fakeFavoriteStore{failOn: "bad"}
	svc := NewFavoriteService(fake, discardLogger())

	_, err := svc.Merge(context.Background(), "u1", []string{"p1", "bad", strings.Repeat("p", 40), "p2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, fake.added)
}

func TestFavoriteService_ListDedupesAndSkipsMissingProducts(t *testing.T) {
	rose := &models.Product{ID: "p1", Name: "Rose"}
	fake := &fakeFavoriteStore{favorites: []models.Favorite{
		{ProductID: "p1", Product: rose},
		{ProductID: "gone"},
		{ProductID: "p1", Product: rose},
	}}
	svc := NewFavoriteService(fake, discardLogger())

	products, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Rose", products[0].Name)
}
