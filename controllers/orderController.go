package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Kariqs/woven-magic-api/middlewares"
	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/services"
	"github.com/Kariqs/woven-magic-api/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders   *services.OrderService
	checkout *services.CheckoutService
}

func NewOrderController(orders *services.OrderService, checkout *services.CheckoutService) *OrderController {
	return &OrderController{orders: orders, checkout: checkout}
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	// the body is optional
	var data models.CreateOrderData
	if err := ctx.ShouldBindJSON(&data); err != nil && !errors.Is(err, io.EOF) {
		sendErrorResponse(ctx, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	order, err := c.orders.Create(ctx.Request.Context(), middlewares.CurrentUserID(ctx), data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, order)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.ListForUser(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}

func (c *OrderController) GetOrderByID(ctx *gin.Context) {
	order, err := c.orders.Get(ctx.Request.Context(), middlewares.CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var data models.OrderStatusData
	if !bindJSON(ctx, &data) {
		return
	}

	order, err := c.orders.UpdateStatus(ctx.Request.Context(), middlewares.CurrentUserID(ctx), ctx.Param("id"), data.Status)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}

// GetOrderWhatsAppLink returns the wa.me link that hands the order over to the shop.
func (c *OrderController) GetOrderWhatsAppLink(ctx *gin.Context) {
	order, err := c.orders.Get(ctx.Request.Context(), middlewares.CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	link, err := c.checkout.OrderLink(ctx.Request.Context(), order)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, link)
}
