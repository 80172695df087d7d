package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kariqs/woven-magic-api/services"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (string, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the caller's user id in the gin context.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		userID, err := auth.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": services.ErrorMessage(err)})
				return
			}
			slog.ErrorContext(ctx.Request.Context(), "authentication failed", "error", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// CurrentUserID returns the id stored by RequireAuth, or "" outside protected routes.
func CurrentUserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}
