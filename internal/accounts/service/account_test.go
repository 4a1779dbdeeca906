package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
	"github.com/aussiebroadwan/passport/internal/accounts/service"
	"github.com/aussiebroadwan/passport/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/passport/pkg/cryptox"
	"github.com/aussiebroadwan/passport/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var secret = []byte("service-test-secret-0123456789abcdef")

type fixture struct {
	svc      *service.AccountService
	store    *sqlite.Store
	verifier *jwtx.HS256Verifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	return fixture{
		svc: &service.AccountService{
			Store:  st,
			Hasher: cryptox.NewHasher("test-pepper"),
			Tokens: jwtx.NewIssuer(signer, "passport"),
		},
		store:    st,
		verifier: signer.Verifier("passport"),
	}
}

func (f fixture) register(t *testing.T, email string) domain.User {
	t.Helper()
	u, err := f.svc.Register(context.Background(), service.RegisterInput{
		Name: "Ada", Email: email, Password: "secret1",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterForcesDefaultRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.svc.Register(ctx, service.RegisterInput{
		Name: " Ada ", Email: " Ada@Example.COM ", Password: "secret1", Role: "admin",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, u.Role)
	require.Equal(t, "Ada", u.Name)
	require.Equal(t, "ada@example.com", u.Email)
	require.Empty(t, u.Favorites)
	require.NotEqual(t, "secret1", u.PasswordHash)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	token, err := f.svc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	claims, err := f.verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user", claims.Role)
	require.Equal(t, u.ID, claims.Subject)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   service.RegisterInput
		want error
	}{
		{"missing name", service.RegisterInput{Email: "a@x.com", Password: "p"}, service.ErrValidation},
		{"blank name", service.RegisterInput{Name: "  ", Email: "a@x.com", Password: "p"}, service.ErrValidation},
		{"missing email", service.RegisterInput{Name: "A", Password: "p"}, service.ErrValidation},
		{"missing password", service.RegisterInput{Name: "A", Email: "a@x.com"}, service.ErrValidation},
		{"huge password", service.RegisterInput{Name: "A", Email: "a@x.com", Password: strings.Repeat("p", 2000)}, service.ErrValidation},
		{"no at sign", service.RegisterInput{Name: "A", Email: "ax.com", Password: "p"}, service.ErrInvalidEmail},
		{"two at signs", service.RegisterInput{Name: "A", Email: "a@b@x.com", Password: "p"}, service.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Register(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.register(t, "dup@example.com")

	_, err := f.svc.Register(ctx, service.RegisterInput{
		Name: "Other", Email: "DUP@example.com", Password: "different",
	})
	require.ErrorIs(t, err, service.ErrEmailTaken)

	got, err := f.store.Users().GetUserByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")

	_, wrongPassword := f.svc.Login(ctx, "ada@example.com", "nope")
	_, unknownEmail := f.svc.Login(ctx, "ghost@example.com", "secret1")
	_, empty := f.svc.Login(ctx, "", "")

	require.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, service.ErrInvalidCredentials)
	require.ErrorIs(t, empty, service.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginUpgradesLegacyHash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "legacy@example.com")

	legacy, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	legacyStr := string(legacy)
	_, err = f.store.Users().UpdateUser(ctx, u.ID, domain.UserUpdate{PasswordHash: &legacyStr})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "legacy@example.com", "old-secret")
	require.NoError(t, err)

	got, err := f.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got.PasswordHash, "$argon2id$"))

	_, err = f.svc.Login(ctx, "legacy@example.com", "old-secret")
	require.NoError(t, err)
}

func TestUpdateSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "ada@example.com")

	t.Run("name only leaves email and hash", func(t *testing.T) {
		got, err := f.svc.UpdateSelf(ctx, u.ID, service.UpdateInput{Name: "Ada King"})
		require.NoError(t, err)
		require.Equal(t, "Ada King", got.Name)
		require.Equal(t, u.Email, got.Email)
		require.Equal(t, u.PasswordHash, got.PasswordHash)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		_, err := f.svc.UpdateSelf(ctx, u.ID, service.UpdateInput{Password: "n3w-secret"})
		require.NoError(t, err)

		_, err = f.svc.Login(ctx, "ada@example.com", "secret1")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
		_, err = f.svc.Login(ctx, "ada@example.com", "n3w-secret")
		require.NoError(t, err)
	})

	t.Run("email is normalized", func(t *testing.T) {
		got, err := f.svc.UpdateSelf(ctx, u.ID, service.UpdateInput{Email: " ADA.KING@example.com"})
		require.NoError(t, err)
		require.Equal(t, "ada.king@example.com", got.Email)
	})

	t.Run("email clash", func(t *testing.T) {
		f.register(t, "taken@example.com")
		_, err := f.svc.UpdateSelf(ctx, u.ID, service.UpdateInput{Email: "taken@example.com"})
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := f.svc.UpdateSelf(ctx, u.ID, service.UpdateInput{Email: "nope"})
		require.ErrorIs(t, err, service.ErrInvalidEmail)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.UpdateSelf(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ", service.UpdateInput{Name: "x"})
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("empty update is a read", func(t *testing.T) {
		before, err := f.svc.GetSelf(ctx, u.ID)
		require.NoError(t, err)

		got, err := f.svc.UpdateSelf(ctx, u.ID, service.UpdateInput{Name: "  "})
		require.NoError(t, err)
		require.Equal(t, before.Name, got.Name)
		require.True(t, before.UpdatedAt.Equal(got.UpdatedAt))

		_, err = f.svc.UpdateSelf(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ", service.UpdateInput{})
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestDeleteSelfMakesTokenStale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "gone@example.com")
	require.NoError(t, f.svc.AddFavorite(ctx, u.ID, "NZL"))

	require.NoError(t, f.svc.DeleteSelf(ctx, u.ID))

	_, err := f.svc.GetSelf(ctx, u.ID)
	require.ErrorIs(t, err, service.ErrUserNotFound)
	_, err = f.svc.Favorites(ctx, u.ID)
	require.ErrorIs(t, err, service.ErrUserNotFound)
	require.ErrorIs(t, f.svc.DeleteSelf(ctx, u.ID), service.ErrUserNotFound)
}

func TestFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "fav@example.com")

	favs, err := f.svc.Favorites(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, favs)
	require.Empty(t, favs)

	require.ErrorIs(t, f.svc.AddFavorite(ctx, u.ID, "   "), service.ErrCountryIDRequired)
	require.ErrorIs(t, f.svc.RemoveFavorite(ctx, u.ID, ""), service.ErrCountryIDRequired)

	require.NoError(t, f.svc.AddFavorite(ctx, u.ID, " USA "))
	require.ErrorIs(t, f.svc.AddFavorite(ctx, u.ID, "USA"), service.ErrFavoriteExists)

	favs, err = f.svc.Favorites(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"USA"}, favs)

	require.ErrorIs(t, f.svc.RemoveFavorite(ctx, u.ID, "CAN"), service.ErrFavoriteNotFound)
	favs, err = f.svc.Favorites(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"USA"}, favs)

	require.NoError(t, f.svc.RemoveFavorite(ctx, u.ID, "USA"))
	favs, err = f.svc.Favorites(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, favs)
}

func TestTokenExpiresAfterOneHour(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "clock@example.com")

	issuedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	f.svc.Tokens.Now = func() time.Time { return issuedAt }

	token, err := f.svc.Login(ctx, "clock@example.com", "secret1")
	require.NoError(t, err)

	f.verifier.Now = func() time.Time { return issuedAt.Add(59*time.Minute + 59*time.Second) }
	_, err = f.verifier.Verify(token)
	require.NoError(t, err)

	f.verifier.Now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = f.verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}
