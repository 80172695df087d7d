package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Kariqs/woven-magic-api/initializers"
	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, initializers.SyncDatabase(db))
	return store.New(db), db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedProduct(t *testing.T, st *store.Store, name string, price int64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: decimal.NewFromInt(price), InStock: true}
	require.NoError(t, st.CreateProduct(context.Background(), &product))
	return product
}
