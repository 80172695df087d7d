package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Kariqs/woven-magic-api/models"
	"github.com/Kariqs/woven-magic-api/store"
	"github.com/Kariqs/woven-magic-api/utils"
)

const (
	msgUserExists         = "User already exists"
	msgEmailInUse         = "Email already in use"
	msgInvalidCredentials = "Invalid email or password"
	msgUserNotFound       = "User not found"
	msgNotAuthorized      = "Not authorized, token failed"
	msgNoRefreshToken     = "No refresh token"
	msgInvalidRefresh     = "Invalid refresh token"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email, exceptID string) (bool, error)
	UpdateUserProfile(ctx context.Context, user *models.User) error
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	users  UserStore
	tokens *utils.TokenManager
}

func NewAuthService(users UserStore, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, data models.RegisterData) (*Session, error) {
	email := normalizeEmail(data.Email)
	taken, err := s.users.EmailTaken(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictError(msgUserExists)
	}

	hashed, err := utils.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: strings.TrimSpace(data.Name), Email: email, Password: hashed}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, conflictError(msgUserExists)
		}
		return nil, err
	}
	return s.newSession(user)
}

func (s *AuthService) Login(ctx context.Context, data models.LoginData) (*Session, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(data.Email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, unauthenticatedError(msgInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if err := utils.ComparePasswords(user.Password, data.Password); err != nil {
		return nil, unauthenticatedError(msgInvalidCredentials)
	}
	return s.newSession(user)
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, unauthenticatedError(msgNoRefreshToken)
	}
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, unauthenticatedError(msgInvalidRefresh)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, unauthenticatedError(msgInvalidRefresh)
	}
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, AccessToken: accessToken}, nil
}

// Authenticate resolves an access token to the id of an existing user.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (string, error) {
	userID, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return "", unauthenticatedError(msgNotAuthorized)
	}
	if _, err := s.users.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", unauthenticatedError(msgNotAuthorized)
		}
		return "", err
	}
	return userID, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFoundError(msgUserNotFound)
	}
	return user, err
}

// UpdateProfile changes the fields present in update.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if email != user.Email {
			taken, err := s.users.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, conflictError(msgEmailInUse)
			}
			user.Email = email
		}
	}

	if err := s.users.UpdateUserProfile(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, conflictError(msgEmailInUse)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) RefreshTokenTTL() int {
	return int(s.tokens.RefreshTokenTTL().Seconds())
}

func (s *AuthService) newSession(user *models.User) (*Session, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
