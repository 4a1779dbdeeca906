package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/passport/internal/accounts/service"
	"github.com/aussiebroadwan/passport/pkg/accountsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
)

type FavoritesHandler struct {
	AccountService *service.AccountService
}

// Add appends a country to the caller's favorites.
//
//	@Summary		Add a favorite country
//	@Description	Adding a country that is already a favorite is rejected with 400.
//	@Tags			Favorites
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.FavoriteRequest	true	"Country"
//	@Success		200		{object}	accountsdk.MessageResponse	"Country added to favorites"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"countryId missing or already a favorite"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	accountsdk.ErrorResponse	"Access denied"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"User not found"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/add/favorites [put].
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req accountsdk.FavoriteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, httpx.ErrEmptyBody) {
			accountsdk.ErrCountryIDRequired.WriteError(w)
			return
		}
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if err := h.AccountService.AddFavorite(r.Context(), userID, req.CountryID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{Message: "Country added to favorites"})
}

// List returns the caller's favorites.
//
//	@Summary		List favorite countries
//	@Tags			Favorites
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.FavoritesResponse	"Favorites in insertion order"
//	@Failure		401	{object}	accountsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403	{object}	accountsdk.ErrorResponse		"Access denied"
//	@Failure		404	{object}	accountsdk.ErrorResponse		"User not found"
//	@Failure		500	{object}	accountsdk.ErrorResponse		"Internal server error"
//	@Router			/api/auth/favorites [get].
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	favs, err := h.AccountService.Favorites(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.FavoritesResponse{Favorites: favs})
}

// Remove drops a country from the caller's favorites. The country comes from
// the JSON body, or from the countryId query parameter when there is no body.
//
//	@Summary		Remove a favorite country
//	@Tags			Favorites
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request		body		accountsdk.FavoriteRequest	false	"Country"
//	@Param			countryId	query		string						false	"Country, when no body is sent"
//	@Success		200			{object}	accountsdk.MessageResponse	"Country removed from favorites"
//	@Failure		400			{object}	accountsdk.ErrorResponse	"countryId missing"
//	@Failure		401			{object}	accountsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403			{object}	accountsdk.ErrorResponse	"Access denied"
//	@Failure		404			{object}	accountsdk.ErrorResponse	"User not found or country not in favorites"
//	@Failure		500			{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/remove/favorites [delete].
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req accountsdk.FavoriteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		if !errors.Is(err, httpx.ErrEmptyBody) {
			accountsdk.ErrInvalidBody.WriteError(w)
			return
		}
		req.CountryID = r.URL.Query().Get("countryId")
	}

	if err := h.AccountService.RemoveFavorite(r.Context(), userID, req.CountryID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{Message: "Country removed from favorites"})
}
