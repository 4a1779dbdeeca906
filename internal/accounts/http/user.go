package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
	"github.com/aussiebroadwan/passport/internal/accounts/service"
	"github.com/aussiebroadwan/passport/pkg/accountsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
)

type UserHandler struct {
	AccountService *service.AccountService
}

// toUserDTO is the only place a domain.User leaves the service. The password
// hash is dropped here.
func toUserDTO(u domain.User) accountsdk.User {
	favs := u.Favorites
	if favs == nil {
		favs = []string{}
	}
	return accountsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Favorites: favs,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Get returns the caller's profile.
//
//	@Summary		Get current user
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.UserResponse		"Profile without password hash"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	accountsdk.ErrorResponse	"Access denied"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"User not found"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/user [get].
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	u, err := h.AccountService.GetSelf(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.UserResponse{User: toUserDTO(u)})
}

// Update changes the provided profile fields.
//
//	@Summary		Update current user
//	@Description	Partial update: omitted or empty fields keep their value. A new password is re-hashed.
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdateUserRequest	false	"Fields to change"
//	@Success		200		{object}	accountsdk.UpdateUserResponse	"Updated profile"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"Malformed body or invalid email"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403		{object}	accountsdk.ErrorResponse		"Access denied"
//	@Failure		404		{object}	accountsdk.ErrorResponse		"User not found"
//	@Failure		409		{object}	accountsdk.ErrorResponse		"Email already registered"
//	@Failure		500		{object}	accountsdk.ErrorResponse		"Internal server error"
//	@Router			/api/auth/update/user [put].
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	// No body is an update with no fields.
	var req accountsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, httpx.ErrEmptyBody) {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	u, err := h.AccountService.UpdateSelf(r.Context(), userID, service.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.UpdateUserResponse{
		Message: "User updated successfully",
		User:    toUserDTO(u),
	})
}

// Delete removes the caller's account.
//
//	@Summary		Delete current user
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.MessageResponse	"User deleted successfully"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	accountsdk.ErrorResponse	"Access denied"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"User not found"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/delete/user [delete].
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.DeleteSelf(r.Context(), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{Message: "User deleted successfully"})
}
