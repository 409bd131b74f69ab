package auth

import (
	"context"
	"errors"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// Verification errors
var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing bearer token")
)

// Verifier checks a raw bearer token's signature and claims and resolves it
// to an identity. Implementations must never accept an unverified token.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*domain.Identity, error)
}

// ChainVerifier tries each verifier in order and returns the first identity
// that checks out. It lets internally issued tokens and Supabase tokens
// coexist on the same endpoints.
type ChainVerifier struct {
	verifiers []Verifier
}

// NewChainVerifier creates a verifier that accepts a token valid under any of
// the given verifiers
func NewChainVerifier(verifiers ...Verifier) *ChainVerifier {
	return &ChainVerifier{verifiers: verifiers}
}

// Verify tries each verifier in order
func (c *ChainVerifier) Verify(ctx context.Context, rawToken string) (*domain.Identity, error) {
	for _, v := range c.verifiers {
		identity, err := v.Verify(ctx, rawToken)
		if err == nil {
			return identity, nil
		}
	}
	return nil, ErrInvalidToken
}

// Ensure ChainVerifier implements Verifier
var _ Verifier = (*ChainVerifier)(nil)
