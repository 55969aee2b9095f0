package service

import (
	"context"
	"fmt"
	"strings"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// TokenIssuer signs session tokens for users
type TokenIssuer interface {
	IssueToken(user *models.User) (string, error)
	ExpiresIn() int64
}

// SessionService handles login
type SessionService struct {
	store     *store.Store
	tokens    TokenIssuer
	validator *validator.Validate
}

// NewSessionService creates a new session service
func NewSessionService(store *store.Store, tokens TokenIssuer, validator *validator.Validate) *SessionService {
	return &SessionService{
		store:     store,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents a login by name and role
type LoginRequest struct {
	Name string      `json:"name" validate:"required,max=100" example:"Sarah Miller"`
	Role models.Role `json:"role" validate:"required,role" example:"member"`
}

// LoginResponse carries the session token and the logged-in user
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        models.User `json:"user"`
}

// Login resolves the user named in req, creating it with the requested role
// when absent and updating its role when it differs, then issues a token.
func (s *SessionService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if role, err := models.ParseRole(string(req.Role)); err == nil {
		req.Role = role
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		found, ok := tx.Engine().FindUserByName(req.Name)
		if ok && found.Role == req.Role {
			user = found
			return nil
		}
		if !ok {
			found = &models.User{Name: req.Name}
		}
		found.Role = req.Role
		stored, err := tx.Upsert(found)
		if err != nil {
			return err
		}
		user = stored.(*models.User)
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.WithContext(authz.WithSession(ctx, authz.NewSession(*user))).Info("user logged in")

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokens.ExpiresIn(),
		User:        *user,
	}, nil
}
