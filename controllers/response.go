package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kariqs/woven-magic-api/services"
	"github.com/Kariqs/woven-magic-api/utils"
	"github.com/gin-gonic/gin"
)

// Standard response messages
const (
	msgInternalServerError = "Internal server error"
	msgQuantityRequired    = "Quantity is required"
	msgLoggedOut           = "Logged out successfully"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// bindJSON answers 400 with the first validation message when the body does not bind.
func bindJSON(ctx *gin.Context, dest any) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, utils.ValidationMessage(err))
		return false
	}
	return true
}

func respondWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "request failed",
			"method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		sendErrorResponse(ctx, status, msgInternalServerError)
		return
	}

	message := services.ErrorMessage(err)
	if message == "" {
		message = err.Error()
	}
	sendErrorResponse(ctx, status, message)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
