package http

import (
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/slogx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new user
//	@Description	Creates a user and an empty funding account. Role defaults to standard; the legacy numeric codes 1 (privileged) and 2 (standard) are accepted.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		spendlysdk.RegisterRequest	true	"Credentials"
//	@Success		201		{object}	spendlysdk.User
//	@Failure		400		{object}	spendlysdk.APIError	"Invalid username, password or role"
//	@Failure		409		{object}	spendlysdk.APIError	"Username already taken"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req spendlysdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	user, err := h.UserService.Register(ctx, service.RegisterRequest{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("user registered", "user_id", user.ID, "role", user.Role)
	httpx.WriteJSON(w, http.StatusCreated, toUser(user))
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles login.
//
//	@Summary		Log in
//	@Description	Exchanges credentials for a one-hour JWT session token. Accounts with MFA enabled must also supply a live TOTP code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		spendlysdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	spendlysdk.LoginResponse
//	@Failure		401		{object}	spendlysdk.APIError	"Bad credentials or missing MFA code"
//	@Failure		404		{object}	spendlysdk.APIError	"Unknown username"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req spendlysdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	sess, err := h.AuthService.Login(ctx, req.Username, req.Password, req.OTP)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("user logged in", "user_id", sess.User.ID)
	httpx.WriteJSON(w, http.StatusOK, spendlysdk.LoginResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresIn:   sess.ExpiresIn,
		User:        toUser(sess.User),
	})
}
