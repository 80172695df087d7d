package controllers

import (
	"net/http"

	"github.com/Kariqs/woven-magic-api/services"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.products.List(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}

func (c *ProductController) GetProductByID(ctx *gin.Context) {
	product, err := c.products.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, product)
}
