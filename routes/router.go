package routes

import (
	"log/slog"

	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/Kariqs/woven-magic-api/middlewares"
	"github.com/gin-gonic/gin"
)

// Handlers groups every controller the router mounts.
type Handlers struct {
	Default   *controllers.DefaultController
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Cart      *controllers.CartController
	Favorites *controllers.FavoriteController
	Orders    *controllers.OrderController
	Checkout  *controllers.CheckoutController
}

type RouterConfig struct {
	AllowedOrigins []string
	Authenticator  middlewares.Authenticator
	AuthRateLimit  int
	Logger         *slog.Logger
}

func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middlewares.RequestLogger(cfg.Logger))
	server.Use(middlewares.CORS(cfg.AllowedOrigins))

	requireAuth := middlewares.RequireAuth(cfg.Authenticator)
	authLimiter := middlewares.NewRateLimiter(cfg.AuthRateLimit).Middleware()

	DefaultRoutes(server, h.Default)

	api := server.Group("/api")
	HealthRoutes(api, h.Default)
	AuthRoutes(api, h.Auth, requireAuth, authLimiter)
	UserRoutes(api, h.Auth, requireAuth)
	ProductRoutes(api, h.Products)
	CartRoutes(api, h.Cart, requireAuth)
	FavoriteRoutes(api, h.Favorites, requireAuth)
	OrderRoutes(api, h.Orders, requireAuth)
	CheckoutRoutes(api, h.Checkout)
	return server
}
