package controllers

import (
	"net/http"

	"github.com/Kariqs/woven-magic-api/middlewares"
	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/services"
	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// addFavoriteRequest is either a merge {"productIds": [...]} or a single {"productId"}.
type addFavoriteRequest struct {
	ProductIDs *[]string `json:"productIds"`
	ProductID  string    `json:"productId"`
}

func (c *FavoriteController) GetFavorites(ctx *gin.Context) {
	products, err := c.favorites.List(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}

func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	var req addFavoriteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	userID := middlewares.CurrentUserID(ctx)
	var (
		products []models.Product
		err      error
	)
	if req.ProductIDs != nil {
		products, err = c.favorites.Merge(ctx.Request.Context(), userID, *req.ProductIDs)
	} else {
		products, err = c.favorites.Add(ctx.Request.Context(), userID, req.ProductID)
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}

func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	products, err := c.favorites.Remove(ctx.Request.Context(), middlewares.CurrentUserID(ctx), ctx.Param("productId"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}
