package auth

import (
	"net/http"
	"strings"

	"teamtrack-backend/internal/authz"

	"github.com/gin-gonic/gin"
)

// sessionContextKey is the gin context key holding the authz.Session
const sessionContextKey = "session"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token, reloads the current user and sets
// the session on both the gin context and the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := m.service.CurrentUser(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetSession(c, authz.NewSession(*user))
		c.Next()
	}
}

// SetSession stores s on the gin context and on the request context
func SetSession(c *gin.Context, s authz.Session) {
	c.Set(sessionContextKey, s)
	c.Request = c.Request.WithContext(authz.WithSession(c.Request.Context(), s))
}

// GetSession is a helper function to extract the session from context
func GetSession(c *gin.Context) (authz.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return authz.Session{}, false
	}

	session, ok := value.(authz.Session)
	return session, ok && !session.IsZero()
}
