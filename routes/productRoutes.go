package routes

import (
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(api *gin.RouterGroup, c *controllers.ProductController) {
	api.GET("/products", c.GetProducts)
	api.GET("/products/:id", c.GetProductByID)
}
