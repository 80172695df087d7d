package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Kariqs/woven-magic-api/cache"
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/Kariqs/woven-magic-api/initializers"
	"github.com/Kariqs/woven-magic-api/routes"
	"github.com/Kariqs/woven-magic-api/services"
	"github.com/Kariqs/woven-magic-api/store"
	"github.com/Kariqs/woven-magic-api/utils"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	initializers.LoadEnv()

	cfg, err := initializers.LoadConfig()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := initializers.SetupLogger(cfg)

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		logger.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	rdb, err := initializers.ConnectToRedis(context.Background(), cfg)
	if err != nil {
		// the catalog cache is optional
		logger.Warn("Redis unavailable, product cache disabled", "error", err)
		rdb = nil
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterValidators()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, logger, db, rdb),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			// one operation, so the server drains before its backends close
			"woven-magic-api": func(ctx context.Context) error {
				logger.Info("Graceful shutdown initiated...")
				err := server.Shutdown(ctx)
				if rdb != nil {
					err = errors.Join(err, rdb.Close())
				}
				return errors.Join(err, initializers.CloseDB(db))
			},
		},
	)

	exitCode := <-wait
	logger.Info("Application exited", "code", exitCode)
	os.Exit(exitCode)
}

func newRouter(cfg *initializers.Config, logger *slog.Logger, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	st := store.New(db)

	tokens := utils.NewTokenManager(utils.TokenConfig{
		AccessSecret:    cfg.JWTSecret,
		RefreshSecret:   cfg.JWTRefreshSecret,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
		Issuer:          "woven-magic-api",
	})
	whatsapp := utils.NewWhatsApp(utils.WhatsAppConfig{
		ShopPhone:     cfg.WhatsAppPhone,
		APIURL:        cfg.WhatsAppAPIURL,
		APIToken:      cfg.WhatsAppAPIToken,
		PhoneNumberID: cfg.WhatsAppPhoneNumberID,
	})

	var (
		productCache *cache.Cache
		catalogCache services.ProductCache
	)
	if rdb != nil {
		productCache = cache.New(rdb, cache.DefaultPrefix, cfg.CacheTTL)
		catalogCache = productCache
		// catalog rows may have changed while the service was down
		if err := productCache.DeletePattern(context.Background(), "products:*"); err != nil {
			logger.Warn("Could not flush product cache", "error", err)
		}
	}

	authService := services.NewAuthService(st, tokens)
	checkoutService := services.NewCheckoutService(st, whatsapp)
	orderService := services.NewOrderService(st, checkoutService, logger)

	return routes.NewRouter(routes.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Authenticator:  authService,
		AuthRateLimit:  cfg.AuthRateLimit,
		Logger:         logger,
	}, routes.Handlers{
		Default:   controllers.NewDefaultController(productCache),
		Auth:      controllers.NewAuthController(authService, cfg.IsProduction()),
		Products:  controllers.NewProductController(services.NewProductService(st, catalogCache, logger)),
		Cart:      controllers.NewCartController(services.NewCartService(st)),
		Favorites: controllers.NewFavoriteController(services.NewFavoriteService(st, logger)),
		Orders:    controllers.NewOrderController(orderService, checkoutService),
		Checkout:  controllers.NewCheckoutController(checkoutService),
	})
}
