package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type TokenConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

type tokenClaims struct {
	UserID    string `json:"id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the access and refresh tokens. The two kinds
// use different secrets, so one can never be presented as the other.
type TokenManager struct {
	config TokenConfig
}

func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{config: config}
}

func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.generate(userID, tokenTypeAccess, m.config.AccessSecret, m.config.AccessTokenTTL)
}

func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.generate(userID, tokenTypeRefresh, m.config.RefreshSecret, m.config.RefreshTokenTTL)
}

// ValidateAccessToken returns the user id carried by a valid access token.
func (m *TokenManager) ValidateAccessToken(tokenString string) (string, error) {
	return m.validate(tokenString, tokenTypeAccess, m.config.AccessSecret)
}

// ValidateRefreshToken returns the user id carried by a valid refresh token.
func (m *TokenManager) ValidateRefreshToken(tokenString string) (string, error) {
	return m.validate(tokenString, tokenTypeRefresh, m.config.RefreshSecret)
}

func (m *TokenManager) RefreshTokenTTL() time.Duration {
	return m.config.RefreshTokenTTL
}

func (m *TokenManager) generate(userID, tokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (m *TokenManager) validate(tokenString, tokenType, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.TokenType != tokenType || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
