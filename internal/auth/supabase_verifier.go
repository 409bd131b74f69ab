package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// SupabaseVerifier validates tokens minted by a Supabase project, signed with
// the project's HS256 JWT secret. The subject claim carries the user id; the
// application role rides in app_metadata.
type SupabaseVerifier struct {
	secret []byte
}

// NewSupabaseVerifier creates a verifier for Supabase issued tokens
func NewSupabaseVerifier(secret string) *SupabaseVerifier {
	return &SupabaseVerifier{secret: []byte(secret)}
}

// Verify checks the token signature and expiry and maps Supabase claims to
// an identity
func (v *SupabaseVerifier) Verify(ctx context.Context, rawToken string) (*domain.Identity, error) {
	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	return &domain.Identity{
		UserID: sub,
		Role:   supabaseRole(claims),
	}, nil
}

// supabaseRole resolves the application role from Supabase claims. Supabase
// puts "authenticated" in the top level role claim, so only app_metadata or
// an explicitly recognized top level value counts; everyone else is a buyer.
func supabaseRole(claims jwt.MapClaims) string {
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok && isKnownRole(role) {
			return role
		}
	}
	if role, ok := claims["role"].(string); ok && isKnownRole(role) {
		return role
	}
	return domain.RoleBuyer
}

func isKnownRole(role string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleOrganizer, domain.RoleBuyer:
		return true
	}
	return false
}

// Ensure SupabaseVerifier implements Verifier
var _ Verifier = (*SupabaseVerifier)(nil)
