package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// InternalVerifier validates tokens signed by this service with its own
// HS256 secret. The issuer claim must match the configured issuer.
type InternalVerifier struct {
	secret []byte
	issuer string
}

// NewInternalVerifier creates a verifier for internally issued tokens
func NewInternalVerifier(secret, issuer string) *InternalVerifier {
	return &InternalVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify checks the token signature, expiry and issuer and extracts the
// user_id and role claims
func (v *InternalVerifier) Verify(ctx context.Context, rawToken string) (*domain.Identity, error) {
	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = domain.RoleBuyer
	}

	return &domain.Identity{
		UserID: userID,
		Role:   role,
	}, nil
}

// Ensure InternalVerifier implements Verifier
var _ Verifier = (*InternalVerifier)(nil)
