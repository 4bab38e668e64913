package http

import (
	"errors"
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/slogx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type BillsHandler struct {
	BillService    *service.BillService
	PaymentService *service.PaymentService
}

// HandleCreate records a new bill against one of the user's cards.
//
//	@Summary	Create a bill
//	@Tags		Bills
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		spendlysdk.CreateBillRequest	true	"Bill details"
//	@Success	201		{object}	spendlysdk.Bill
//	@Failure	400		{object}	spendlysdk.APIError
//	@Failure	404		{object}	spendlysdk.APIError	"Card not found"
//	@Router		/v1/bills [post].
func (h *BillsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req spendlysdk.CreateBillRequest
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
	bill, err := h.BillService.Create(r.Context(), userID, idx.ID(req.CardID), amount, req.Description, req.DueDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toBill(bill))
}

// HandleList returns the user's outstanding bills.
//
//	@Summary	List bills
//	@Tags		Bills
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	spendlysdk.Bill
//	@Router		/v1/bills [get].
func (h *BillsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	bills, err := h.BillService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]spendlysdk.Bill, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBill(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandlePay applies a payment toward a bill. A payment settling the bill in
// full deletes it; a short balance rejects the payment without any writes
// and the response carries the insufficient_funds error.
//
//	@Summary	Pay a bill
//	@Tags		Bills
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Bill ID"
//	@Param		request	body		spendlysdk.PayBillRequest	true	"Decimal amount"
//	@Success	200		{object}	spendlysdk.PaymentResult
//	@Failure	400		{object}	spendlysdk.APIError	"Invalid or excessive amount"
//	@Failure	402		{object}	spendlysdk.APIError	"Insufficient funds"
//	@Failure	404		{object}	spendlysdk.APIError	"Bill not found"
//	@Router		/v1/bills/{id}/pay [post].
func (h *BillsHandler) HandlePay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req spendlysdk.PayBillRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	userID := idx.ID(httpx.UserIDFromCtx(ctx))
	billID := idx.ID(r.PathValue("id"))

	result, err := h.PaymentService.Pay(ctx, userID, billID, req.AccountNumber, amount)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			log.Info("payment rejected", "bill_id", billID, "amount", amount)
		}
		writeServiceError(w, err)
		return
	}

	log.Info("payment applied",
		"bill_id", billID, "amount", amount, "status", result.Transaction.Status)

	resp := spendlysdk.PaymentResult{
		Status:  string(result.Transaction.Status),
		Balance: result.Balance.String(),
	}
	tx := toTransaction(result.Transaction)
	resp.Transaction = &tx
	if result.Bill != nil {
		bill := toBill(*result.Bill)
		resp.Bill = &bill
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
