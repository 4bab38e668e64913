package http

import (
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type TransactionsHandler struct {
	TransactionService *service.TransactionService
}

// HandleList returns the user's payment history, newest first.
//
//	@Summary	List transactions
//	@Tags		Transactions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	spendlysdk.Transaction
//	@Router		/v1/transactions [get].
func (h *TransactionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	txs, err := h.TransactionService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]spendlysdk.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransaction(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
