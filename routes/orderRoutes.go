package routes

import (
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, c *controllers.OrderController, requireAuth gin.HandlerFunc) {
	orders := api.Group("/orders", requireAuth)
	{
		orders.POST("", c.CreateOrder)
		orders.GET("", c.GetOrders)
		orders.GET("/:id", c.GetOrderByID)
		orders.PUT("/:id/status", c.UpdateOrderStatus)
		orders.GET("/:id/whatsapp", c.GetOrderWhatsAppLink)
	}
}

func CheckoutRoutes(api *gin.RouterGroup, c *controllers.CheckoutController) {
	api.POST("/checkout/whatsapp", c.GuestWhatsAppLink)
}
