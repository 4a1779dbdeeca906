// Package storetest holds behavioural tests every store driver must pass.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
	"github.com/aussiebroadwan/passport/internal/accounts/store"
	"github.com/aussiebroadwan/passport/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, migrated, empty store.
type Factory func(t *testing.T) store.Store

// Run exercises the store.Users contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAndGet", func(t *testing.T) { testCreateAndGet(t, newStore(t)) })
	t.Run("DuplicateEmail", func(t *testing.T) { testDuplicateEmail(t, newStore(t)) })
	t.Run("UpdatePartial", func(t *testing.T) { testUpdatePartial(t, newStore(t)) })
	t.Run("UpdateEmailClash", func(t *testing.T) { testUpdateEmailClash(t, newStore(t)) })
	t.Run("Favorites", func(t *testing.T) { testFavorites(t, newStore(t)) })
	t.Run("DeleteCascades", func(t *testing.T) { testDeleteCascades(t, newStore(t)) })
	t.Run("ConcurrentFavorites", func(t *testing.T) { testConcurrentFavorites(t, newStore(t)) })
}

// NewUser builds a valid user with a fresh id.
func NewUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleUser,
	}
}

func testCreateAndGet(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Name, got.Name)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, domain.RoleUser, got.Role)
	require.NotNil(t, got.Favorites)
	require.Empty(t, got.Favorites)
	require.False(t, got.CreatedAt.IsZero())
	require.False(t, got.UpdatedAt.IsZero())

	byEmail, err := s.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDuplicateEmail(t *testing.T, s store.Store) {
	ctx := context.Background()
	require.NoError(t, s.Users().CreateUser(ctx, NewUser("dup@example.com")))

	err := s.Users().CreateUser(ctx, NewUser("dup@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testUpdatePartial(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser("partial@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	before, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	name := "Renamed"
	got, err := s.Users().UpdateUser(ctx, u.ID, domain.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.True(t, got.UpdatedAt.After(before.UpdatedAt), "updated_at must advance")

	hash := "$argon2id$v=19$m=19456,t=2,p=1$bmV3$bmV3"
	got, err = s.Users().UpdateUser(ctx, u.ID, domain.UserUpdate{PasswordHash: &hash})
	require.NoError(t, err)
	require.Equal(t, hash, got.PasswordHash)
	require.Equal(t, "Renamed", got.Name)

	_, err = s.Users().UpdateUser(ctx, idx.New().String(), domain.UserUpdate{Name: &name})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testUpdateEmailClash(t *testing.T, s store.Store) {
	ctx := context.Background()
	a := NewUser("a@example.com")
	b := NewUser("b@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, a))
	require.NoError(t, s.Users().CreateUser(ctx, b))

	email := "a@example.com"
	_, err := s.Users().UpdateUser(ctx, b.ID, domain.UserUpdate{Email: &email})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.Users().GetUserByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "b@example.com", got.Email)
}

func testFavorites(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser("fav@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	users := s.Users()

	favs, err := users.ListFavorites(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, favs)
	require.Empty(t, favs)

	for _, c := range []string{"USA", "AUS", "JPN"} {
		require.NoError(t, users.AddFavorite(ctx, u.ID, c))
	}
	require.ErrorIs(t, users.AddFavorite(ctx, u.ID, "USA"), store.ErrFavoriteExists)

	favs, err = users.ListFavorites(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"USA", "AUS", "JPN"}, favs)

	require.ErrorIs(t, users.RemoveFavorite(ctx, u.ID, "CAN"), store.ErrFavoriteNotFound)
	require.NoError(t, users.RemoveFavorite(ctx, u.ID, "AUS"))
	require.ErrorIs(t, users.RemoveFavorite(ctx, u.ID, "AUS"), store.ErrFavoriteNotFound)

	got, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"USA", "JPN"}, got.Favorites)

	ghost := idx.New().String()
	require.ErrorIs(t, users.AddFavorite(ctx, ghost, "USA"), store.ErrNotFound)
	require.ErrorIs(t, users.RemoveFavorite(ctx, ghost, "USA"), store.ErrNotFound)
	_, err = users.ListFavorites(ctx, ghost)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDeleteCascades(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser("gone@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Users().AddFavorite(ctx, u.ID, "NZL"))

	require.NoError(t, s.Users().DeleteUser(ctx, u.ID))
	require.ErrorIs(t, s.Users().DeleteUser(ctx, u.ID), store.ErrNotFound)

	_, err := s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Re-using the id must not resurrect old favorites.
	require.NoError(t, s.Users().CreateUser(ctx, u))
	favs, err := s.Users().ListFavorites(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, favs)
}

func testConcurrentFavorites(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser("race@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	const n = 16

	t.Run("distinct ids all survive", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.Users().AddFavorite(ctx, u.ID, fmt.Sprintf("C%02d", i))
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		favs, err := s.Users().ListFavorites(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, favs, n)
	})

	t.Run("same id added once", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.Users().AddFavorite(ctx, u.ID, "ONE")
			}()
		}
		wg.Wait()
		close(errs)

		var ok, dup int
		for err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, store.ErrFavoriteExists):
				dup++
			default:
				require.NoError(t, err)
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, n-1, dup)
	})
}
