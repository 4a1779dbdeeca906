package jwtx

import (
	"fmt"
	"time"
)

// Issuer mints session tokens for authenticated users.
type Issuer struct {
	Signer Signer
	Issuer string
	TTL    time.Duration

	// Now is the clock used for iat/nbf/exp. Defaults to time.Now.
	Now func() time.Time
}

// NewIssuer returns an Issuer using DefaultSessionTTL.
func NewIssuer(signer Signer, issuer string) *Issuer {
	return &Issuer{Signer: signer, Issuer: issuer, TTL: DefaultSessionTTL, Now: time.Now}
}

// Issue signs a token for subject carrying role. The issue time is truncated
// to whole seconds, the resolution of NumericDate, so exp is exactly iat+TTL.
func (i *Issuer) Issue(subject, role string) (string, Claims, error) {
	if subject == "" || role == "" {
		return "", Claims{}, ErrInvalidClaim
	}

	now := time.Now
	if i.Now != nil {
		now = i.Now
	}
	ttl := i.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	claims := NewSessionClaims(subject, role, i.Issuer, ttl, now().UTC().Truncate(time.Second))
	token, err := i.Signer.Sign(claims)
	if err != nil {
		return "", Claims{}, fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, claims, nil
}
