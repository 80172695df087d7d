package controllers

import (
	"net/http"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/services"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

type guestCheckoutRequest struct {
	Name  string                 `json:"name"`
	Items []models.CartItemInput `json:"items" binding:"required"`
}

// GuestWhatsAppLink prices a cart kept on the client and returns its wa.me link.
func (c *CheckoutController) GuestWhatsAppLink(ctx *gin.Context) {
	var req guestCheckoutRequest
	if !bindJSON(ctx, &req) {
		return
	}

	link, err := c.checkout.GuestLink(ctx.Request.Context(), req.Name, req.Items)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, link)
}
