package routes

import (
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine, c *controllers.DefaultController) {
	server.GET("/", c.GetHome)
}

func HealthRoutes(api *gin.RouterGroup, c *controllers.DefaultController) {
	api.GET("/health", c.Health)
}
