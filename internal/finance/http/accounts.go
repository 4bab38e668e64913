package http

import (
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type AccountHandler struct {
	AccountService *service.AccountService
}

// HandleGet returns the authenticated user's funding account.
//
//	@Summary	Get account balance
//	@Tags		Account
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	spendlysdk.Account
//	@Failure	401	{object}	spendlysdk.APIError
//	@Router		/v1/account [get].
func (h *AccountHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	acct, err := h.AccountService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccount(acct))
}

// HandleDeposit adds funds to the account.
//
//	@Summary	Deposit funds
//	@Tags		Account
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		spendlysdk.DepositRequest	true	"Decimal amount, e.g. \"50.00\""
//	@Success	200		{object}	spendlysdk.Account
//	@Failure	400		{object}	spendlysdk.APIError
//	@Router		/v1/account/deposit [post].
func (h *AccountHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	var req spendlysdk.DepositRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))
	acct, err := h.AccountService.Deposit(r.Context(), userID, amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccount(acct))
}
