package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
)

// Context keys set by the middleware
const (
	ContextKeyIdentity = "identity"
	ContextKeyUserID   = "user_id"
	ContextKeyRole     = "role"
)

// Middleware returns a gin middleware that requires a valid bearer token and
// stores the verified identity on the request context
func Middleware(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, err := extractBearer(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, "missing or malformed authorization header")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), rawToken)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Set(ContextKeyUserID, identity.UserID)
		c.Set(ContextKeyRole, identity.Role)
		c.Next()
	}
}

// IdentityFromContext returns the verified identity set by the middleware,
// or nil on unauthenticated requests
func IdentityFromContext(c *gin.Context) *domain.Identity {
	value, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	identity, ok := value.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}

func extractBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   "unauthorized",
		Code:    "AUTHENTICATION_REQUIRED",
		Message: message,
	})
}
