package routes

import (
	"github.com/Kariqs/woven-magic-api/controllers"
	"github.com/gin-gonic/gin"
)

func FavoriteRoutes(api *gin.RouterGroup, c *controllers.FavoriteController, requireAuth gin.HandlerFunc) {
	favorites := api.Group("/favorites", requireAuth)
	{
		favorites.GET("", c.GetFavorites)
		favorites.POST("", c.AddFavorite)
		favorites.DELETE("/:productId", c.RemoveFavorite)
	}
}
