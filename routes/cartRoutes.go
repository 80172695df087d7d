package routes

import (
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(api *gin.RouterGroup, c *controllers.CartController, requireAuth gin.HandlerFunc) {
	cart := api.Group("/cart", requireAuth)
	{
		cart.GET("", c.GetCart)
		cart.POST("", c.AddToCart)
		cart.DELETE("", c.ClearCart)
		cart.PUT("/:itemId", c.UpdateCartItem)
		cart.DELETE("/:itemId", c.RemoveCartItem)
	}
}
