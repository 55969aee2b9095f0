package auth

import (
	"fmt"
	"time"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// UserLookup resolves the user a token was issued to
type UserLookup interface {
	User(id string) (*models.User, bool)
}

// AuthService issues and validates session tokens
type AuthService struct {
	config *AuthConfig
	users  UserLookup
	now    func() time.Time
}

// AuthClaims represents the claims carried by a session token
type AuthClaims struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserLookup) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}
	return &AuthService{
		config: config,
		users:  users,
		now:    time.Now,
	}, nil
}

// ExpiresIn is the lifetime of issued tokens in seconds
func (s *AuthService) ExpiresIn() int64 {
	return int64(s.config.TokenTTL() / time.Second)
}

// IssueToken creates a signed token for user
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken validates and parses a session token
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// CurrentUser validates tokenString and reloads the user it names, so role
// and name changes made after issue are honoured.
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, ok := s.users.User(claims.UserID)
	if !ok {
		return nil, apperrors.NewAuthenticationError("user no longer exists")
	}
	return user, nil
}
