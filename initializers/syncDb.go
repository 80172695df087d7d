package initializers

import (
	"log/slog"

	"github.com/Kariqs/woven-magic-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}
	slog.Info("Database synced successfully.")
	return nil
}
