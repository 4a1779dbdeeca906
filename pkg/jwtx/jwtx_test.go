package jwtx_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passport/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newPair(t *testing.T, issuedAt time.Time) (*jwtx.Issuer, *jwtx.HS256Verifier) {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	issuer := jwtx.NewIssuer(signer, "passport")
	issuer.Now = fixedClock(issuedAt)

	verifier := signer.Verifier("passport")
	verifier.Now = fixedClock(issuedAt)

	return issuer, verifier
}

func TestIssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer, verifier := newPair(t, issuedAt)

	token, claims, err := issuer.Issue("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "user")
	require.NoError(t, err)
	require.True(t, issuedAt.Add(time.Hour).Equal(claims.ExpiresAt.Time))

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", got.Subject)
	require.Equal(t, "user", got.Role)
	require.Equal(t, "passport", got.Issuer)
	require.NotEmpty(t, got.ID)
}

func TestIssueTruncatesToSeconds(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 750_000_000, time.UTC)
	issuer, _ := newPair(t, issuedAt)

	_, claims, err := issuer.Issue("subject", "user")
	require.NoError(t, err)
	require.True(t, claims.IssuedAt.Add(time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer, verifier := newPair(t, issuedAt)

	token, _, err := issuer.Issue("subject", "user")
	require.NoError(t, err)

	t.Run("valid just before one hour", func(t *testing.T) {
		verifier.Now = fixedClock(issuedAt.Add(time.Hour - time.Nanosecond))
		_, err := verifier.Verify(token)
		require.NoError(t, err)
	})

	t.Run("expired at exactly one hour", func(t *testing.T) {
		verifier.Now = fixedClock(issuedAt.Add(time.Hour))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("expired after one hour", func(t *testing.T) {
		verifier.Now = fixedClock(issuedAt.Add(2 * time.Hour))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		verifier.Now = fixedClock(issuedAt.Add(-time.Minute))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	issuedAt := time.Now().UTC()
	issuer, verifier := newPair(t, issuedAt)

	token, claims, err := issuer.Issue("subject", "user")
	require.NoError(t, err)

	t.Run("different secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("another-secret-that-is-long-enough"))
		require.NoError(t, err)
		forged, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(forged)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(unsigned)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("other hmac variant", func(t *testing.T) {
		hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = verifier.Verify(hs512)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := verifier.Verify(token[:len(token)-6])
		require.True(t,
			errors.Is(err, jwtx.ErrMalformed) || errors.Is(err, jwtx.ErrInvalidSig),
			"unexpected error: %v", err)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, in := range []string{"", "abc", "a.b.c", strings.Repeat("x", 300)} {
			_, err := verifier.Verify(in)
			require.ErrorIs(t, err, jwtx.ErrMalformed, "input %q", in)
		}
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256(testSecret)
		require.NoError(t, err)
		strict := signer.Verifier("someone-else")
		strict.Now = fixedClock(issuedAt)

		_, err = strict.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestVerifyRequiresRole(t *testing.T) {
	issuedAt := time.Now().UTC().Truncate(time.Second)
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("subject", "", "passport", time.Hour, issuedAt)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := signer.Verifier("passport")
	verifier.Now = fixedClock(issuedAt)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}

func TestIssueRejectsEmptyClaims(t *testing.T) {
	issuer, _ := newPair(t, time.Now())

	_, _, err := issuer.Issue("", "user")
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	_, _, err = issuer.Issue("subject", "")
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}

func TestNewSignerHS256RejectsWeakKey(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakKey)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	c := &jwtx.Claims{}
	require.ErrorIs(t, c.ValidateExpiry(now), jwtx.ErrInvalidClaim)

	c.ExpiresAt = jwt.NewNumericDate(now.Add(time.Minute))
	require.NoError(t, c.ValidateExpiry(now))

	c.NotBefore = jwt.NewNumericDate(now.Add(time.Second))
	require.ErrorIs(t, c.ValidateExpiry(now), jwtx.ErrNotYetValid)
}
