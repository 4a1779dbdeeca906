package http

import (
	"net/http"

	"github.com/aussiebroadwan/passport/internal/accounts/service"
	"github.com/aussiebroadwan/passport/pkg/accountsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
)

type AccountHandler struct {
	AccountService *service.AccountService
}

// Register creates an account.
//
//	@Summary		Register a new user
//	@Description	Creates an account with the "user" role. Any role in the body is ignored.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	accountsdk.MessageResponse	"User registered successfully"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing or invalid fields"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"Email already registered"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/register [post].
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	_, err := h.AccountService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.MessageResponse{Message: "User registered successfully"})
}

// Login exchanges credentials for a session token.
//
//	@Summary		Log in
//	@Description	Returns a session token valid for one hour. Unknown email and wrong password give the same response.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.TokenResponse	"Session token"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Malformed body"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"Invalid email or password"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/login [post].
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	token, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.TokenResponse{Token: token})
}
