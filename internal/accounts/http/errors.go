package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/passport/internal/accounts/service"
	"github.com/aussiebroadwan/passport/pkg/accountsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

// writeServiceError maps service errors to their API error. Unknown errors
// are logged and reported as 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		accountsdk.ErrMissingFields.WriteError(w)
	case errors.Is(err, service.ErrInvalidEmail):
		accountsdk.ErrInvalidEmail.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		accountsdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		accountsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		accountsdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrCountryIDRequired):
		accountsdk.ErrCountryIDRequired.WriteError(w)
	case errors.Is(err, service.ErrFavoriteExists):
		accountsdk.ErrFavoriteExists.WriteError(w)
	case errors.Is(err, service.ErrFavoriteNotFound):
		accountsdk.ErrFavoriteNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		accountsdk.ErrServerError.WriteError(w)
	}
}

// callerID returns the authenticated subject or writes 401.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		accountsdk.ErrUnauthorized.WriteError(w)
	}
	return id, ok
}
