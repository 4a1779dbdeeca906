package service

import (
	"errors"

	"github.com/aussiebroadwan/passport/internal/accounts/store"
)

var (
	ErrValidation         = errors.New("name, email and password are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrCountryIDRequired  = errors.New("countryId is required")
	ErrFavoriteExists     = errors.New("country already in favorites")
	ErrFavoriteNotFound   = errors.New("country not in favorites")
)

// mapStoreError converts store sentinels into service errors. Anything else
// passes through for the caller to treat as internal.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrEmailTaken
	case errors.Is(err, store.ErrFavoriteExists):
		return ErrFavoriteExists
	case errors.Is(err, store.ErrFavoriteNotFound):
		return ErrFavoriteNotFound
	}
	return err
}
