package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hikegear/storefront/common/errors"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/services"
)

const sessionKey = "session"

// RequireAuth validates the bearer token and stores the session in the
// request context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(apperrors.ErrMissingToken.Code, gin.H{"error": apperrors.ErrMissingToken.Message})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		session, err := tokens.Validate(tokenStr)
		if err != nil {
			c.JSON(apperrors.ErrInvalidToken.Code, gin.H{"error": apperrors.ErrInvalidToken.Message})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireRole checks the authenticated session's role. It must run after
// RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if session.User.Role != role {
			c.JSON(apperrors.ErrAccessDenied.Code, gin.H{"error": apperrors.ErrAccessDenied.Message})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession extracts the session stored by RequireAuth.
func GetSession(c *gin.Context) (*services.Session, error) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, errors.New("no session in context")
	}
	session, ok := v.(*services.Session)
	if !ok {
		return nil, errors.New("invalid session in context")
	}
	return session, nil
}

// GetUser extracts the authenticated user stored by RequireAuth.
func GetUser(c *gin.Context) (models.User, error) {
	session, err := GetSession(c)
	if err != nil {
		return models.User{}, err
	}
	return session.User, nil
}
