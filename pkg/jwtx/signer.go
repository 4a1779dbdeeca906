package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256KeySize is the shortest secret accepted for HS256 signing.
const MinHS256KeySize = 16

var ErrWeakKey = errors.New("jwtx: signing secret too short")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with a shared HMAC-SHA256 secret. The same secret
// verifies them, so it must stay inside this process.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer from a raw secret.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinHS256KeySize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakKey, MinHS256KeySize, len(secret))
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &HS256Signer{key: key}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verifier returns a verifier bound to the same secret.
func (s *HS256Signer) Verifier(issuer string) *HS256Verifier {
	return NewVerifierHS256(s.key, issuer)
}
