package http

import (
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/slogx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// actor loads the authenticated user from the request context.
func (h *UsersHandler) actor(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		spendlysdk.WriteError(w, http.StatusUnauthorized, spendlysdk.ErrCodeInvalidToken, "missing subject")
		return domain.User{}, false
	}

	user, err := h.UserService.GetByID(ctx, idx.ID(userID))
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to load user", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return domain.User{}, false
	}
	return user, true
}

// HandleMe returns the authenticated user's profile.
//
//	@Summary	Get own profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	spendlysdk.User
//	@Failure	401	{object}	spendlysdk.APIError
//	@Router		/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.actor(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleList returns all users. The privileged role is enforced by the
// route middleware.
//
//	@Summary	List users
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		spendlysdk.User
//	@Failure	403	{object}	spendlysdk.APIError
//	@Router		/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]spendlysdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate edits a user. Standard users may only edit themselves.
//
//	@Summary	Update a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"User ID"
//	@Param		request	body		spendlysdk.UpdateUserRequest	true	"Fields to change"
//	@Success	200		{object}	spendlysdk.User
//	@Failure	403		{object}	spendlysdk.APIError
//	@Router		/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req spendlysdk.UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	updated, err := h.UserService.Update(r.Context(), actor, idx.ID(r.PathValue("id")), service.UpdateRequest{
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
	httpx.WriteJSON(w, http.StatusOK, toUser(updated))
}

// HandleDelete removes a user.
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	403	{object}	spendlysdk.APIError
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.UserService.Delete(r.Context(), actor, idx.ID(r.PathValue("id"))); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
