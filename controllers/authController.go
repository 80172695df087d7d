package controllers

import (
	"net/http"

	"github.com/Kariqs/woven-magic-api/middlewares"
	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/services"
	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

type AuthController struct {
	auth          *services.AuthService
	secureCookies bool
}

// NewAuthController builds the controller. secureCookies marks the refresh
// cookie Secure, which production requires.
func NewAuthController(auth *services.AuthService, secureCookies bool) *AuthController {
	return &AuthController{auth: auth, secureCookies: secureCookies}
}

type authResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func newAuthResponse(session *services.Session) authResponse {
	return authResponse{
		ID:    session.User.ID,
		Name:  session.User.Name,
		Email: session.User.Email,
		Token: session.AccessToken,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var data models.RegisterData
	if !bindJSON(ctx, &data) {
		return
	}

	session, err := c.auth.Register(ctx.Request.Context(), data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	c.setRefreshCookie(ctx, session.RefreshToken, c.auth.RefreshTokenTTL())
	sendJSONResponse(ctx, http.StatusCreated, newAuthResponse(session))
}

func (c *AuthController) Login(ctx *gin.Context) {
	var data models.LoginData
	if !bindJSON(ctx, &data) {
		return
	}

	session, err := c.auth.Login(ctx.Request.Context(), data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	c.setRefreshCookie(ctx, session.RefreshToken, c.auth.RefreshTokenTTL())
	sendJSONResponse(ctx, http.StatusOK, newAuthResponse(session))
}

func (c *AuthController) Refresh(ctx *gin.Context) {
	token, _ := ctx.Cookie(refreshCookieName)

	session, err := c.auth.Refresh(ctx.Request.Context(), token)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, newAuthResponse(session))
}

func (c *AuthController) Logout(ctx *gin.Context) {
	c.setRefreshCookie(ctx, "", -1)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

// GetProfile serves both /auth/me and GET /users/profile.
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user, err := c.auth.Profile(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, user)
}

func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var update models.ProfileUpdate
	if !bindJSON(ctx, &update) {
		return
	}

	user, err := c.auth.UpdateProfile(ctx.Request.Context(), middlewares.CurrentUserID(ctx), update)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, user)
}

func (c *AuthController) setRefreshCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(refreshCookieName, token, maxAge, "/", "", c.secureCookies, true)
}
