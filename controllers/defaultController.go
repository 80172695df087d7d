package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Kariqs/woven-magic-api/cache"
	"github.com/gin-gonic/gin"
)

type DefaultController struct {
	cache *cache.Cache
}

// NewDefaultController builds the controller. productCache may be nil.
func NewDefaultController(productCache *cache.Cache) *DefaultController {
	return &DefaultController{cache: productCache}
}

func (c *DefaultController) GetHome(ctx *gin.Context) {
	message := `Welcome to the Woven Magic API. Handmade crochet, delivered over WhatsApp.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account
- POST "/api/auth/refresh" - Exchange the refresh cookie for an access token
- POST "/api/auth/logout" - Clear the refresh cookie (auth)
- GET "/api/auth/me" - Current user
- GET|PUT "/api/users/profile" - Read or update the profile

PRODUCT
- GET "/api/products" - Get all products (optional ?category=)
- GET "/api/products/:id" - Get product by ID

CART
- GET "/api/cart" - Get cart
- POST "/api/cart" - Add an item or merge {"items": [...]}
- PUT "/api/cart/:itemId" - Update item quantity
- DELETE "/api/cart/:itemId" - Remove item
- DELETE "/api/cart" - Clear cart

FAVORITES
- GET "/api/favorites" - Get favorites
- POST "/api/favorites" - Add one or merge {"productIds": [...]}
- DELETE "/api/favorites/:productId" - Remove favorite

ORDER
- POST "/api/orders" - Create an order from the cart
- GET "/api/orders" - Get own orders
- GET "/api/orders/:id" - Get order by ID
- PUT "/api/orders/:id/status" - Update order status
- GET "/api/orders/:id/whatsapp" - WhatsApp checkout link
- POST "/api/checkout/whatsapp" - WhatsApp checkout link for a guest cart`

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (c *DefaultController) Health(ctx *gin.Context) {
	body := gin.H{"status": "ok", "message": "Woven Magic API running"}
	if c.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
		defer cancel()
		cacheStatus := "up"
		if err := c.cache.Ping(pingCtx); err != nil {
			cacheStatus = "down"
		}
		body["cache"] = gin.H{"status": cacheStatus, "stats": c.cache.Stats()}
	}
	sendJSONResponse(ctx, http.StatusOK, body)
}
