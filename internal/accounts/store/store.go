package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	ErrFavoriteExists   = errors.New("store: favorite already present")
	ErrFavoriteNotFound = errors.New("store: favorite not present")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this and expose the user repository through Users.
type Store interface {
	Users() Users

	// ApplyMigrations brings the schema (tables or indexes) up to date. It is
	// safe to call on every start.
	ApplyMigrations() error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

// Users is the credential store. Every method scopes its work to a single
// user and must be safe for concurrent use.
type Users interface {
	// CreateUser inserts u. The caller assigns the ULID. Returns
	// ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns the user with its favorites.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up by normalized email, used by login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateUser applies the non-nil fields of upd, bumps updated_at and
	// returns the stored record. Returns ErrAlreadyExists on an email clash.
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)

	// DeleteUser removes the user and its favorites.
	DeleteUser(ctx context.Context, id string) error

	// AddFavorite appends countryID if absent in one atomic step. Returns
	// ErrFavoriteExists when already present, ErrNotFound for no user.
	AddFavorite(ctx context.Context, id, countryID string) error

	// RemoveFavorite removes countryID if present in one atomic step. Returns
	// ErrFavoriteNotFound when absent, ErrNotFound for no user.
	RemoveFavorite(ctx context.Context, id, countryID string) error

	// ListFavorites returns favorites in insertion order, never nil.
	ListFavorites(ctx context.Context, id string) ([]string, error)
}
