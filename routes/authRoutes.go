package routes

import (
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, c *controllers.AuthController, requireAuth, rateLimit gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", rateLimit, c.Register)
		auth.POST("/login", rateLimit, c.Login)
		auth.POST("/refresh", rateLimit, c.Refresh)
		auth.POST("/logout", requireAuth, c.Logout)
		auth.GET("/me", requireAuth, c.GetProfile)
	}
}

func UserRoutes(api *gin.RouterGroup, c *controllers.AuthController, requireAuth gin.HandlerFunc) {
	users := api.Group("/users", requireAuth)
	{
		users.GET("/profile", c.GetProfile)
		users.PUT("/profile", c.UpdateProfile)
	}
}
