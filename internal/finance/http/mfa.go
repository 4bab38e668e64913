package http

import (
	"context"
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll starts TOTP enrollment for the authenticated user.
//
//	@Summary	Enroll in MFA
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	spendlysdk.MFAEnrollResponse
//	@Failure	400	{object}	spendlysdk.APIError	"Already enabled"
//	@Router		/v1/auth/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	enrollment, err := h.MFAService.Enroll(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, spendlysdk.MFAEnrollResponse{
		Secret:     enrollment.Secret,
		OTPAuthURL: enrollment.OTPAuthURL,
	})
}

// HandleActivate confirms enrollment with a live code.
//
//	@Summary	Activate MFA
//	@Tags		Auth
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	spendlysdk.MFAActivateRequest	true	"Live TOTP code"
//	@Success	204
//	@Failure	400	{object}	spendlysdk.APIError	"Wrong code or not enrolled"
//	@Router		/v1/auth/mfa/activate [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.submitCode(w, r, h.MFAService.Activate)
}

// HandleDisable turns MFA off with a live code.
//
//	@Summary	Disable MFA
//	@Tags		Auth
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	spendlysdk.MFAActivateRequest	true	"Live TOTP code"
//	@Success	204
//	@Failure	400	{object}	spendlysdk.APIError
//	@Router		/v1/auth/mfa/disable [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	h.submitCode(w, r, h.MFAService.Disable)
}

func (h *MFAHandler) submitCode(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID idx.ID, code string) error) {
	var req spendlysdk.MFAActivateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))
	if err := fn(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
