package controllers

import (
	"net/http"

	"github.com/Kariqs/woven-magic-api/middlewares"
	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// addToCartRequest is either a merge {"items": [...]} or a single {"productId", "quantity"}.
type addToCartRequest struct {
	Items     *[]models.CartItemInput `json:"items"`
	ProductID string                  `json:"productId"`
	Quantity  int                     `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (c *CartController) GetCart(ctx *gin.Context) {
	cart, err := c.carts.GetOrCreate(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) AddToCart(ctx *gin.Context) {
	var req addToCartRequest
	if !bindJSON(ctx, &req) {
		return
	}

	userID := middlewares.CurrentUserID(ctx)
	var (
		cart *models.Cart
		err  error
	)
	if req.Items != nil {
		cart, err = c.carts.MergeItems(ctx.Request.Context(), userID, *req.Items)
	} else {
		cart, err = c.carts.AddItem(ctx.Request.Context(), userID, models.CartItemInput{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	var req updateQuantityRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if req.Quantity == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgQuantityRequired)
		return
	}

	cart, err := c.carts.UpdateQuantity(ctx.Request.Context(), middlewares.CurrentUserID(ctx), ctx.Param("itemId"), *req.Quantity)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) RemoveCartItem(ctx *gin.Context) {
	cart, err := c.carts.RemoveItem(ctx.Request.Context(), middlewares.CurrentUserID(ctx), ctx.Param("itemId"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	cart, err := c.carts.Clear(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}
