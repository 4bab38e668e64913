package http

import (
	"net/http"

	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/slogx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type CardsHandler struct {
	CardService *service.CardService
}

// HandleCreate registers a credit card. The full number is classified into
// a network type and only the last four digits are kept.
//
//	@Summary	Add a credit card
//	@Tags		Cards
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		spendlysdk.CreateCardRequest	true	"Card details"
//	@Success	201		{object}	spendlysdk.Card
//	@Failure	400		{object}	spendlysdk.APIError	"Unparseable card number"
//	@Router		/v1/cards [post].
func (h *CardsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req spendlysdk.CreateCardRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	userID := idx.ID(httpx.UserIDFromCtx(ctx))
	card, err := h.CardService.Add(ctx, userID, service.AddCardRequest{
		Number:        req.CardNumber,
		Expiry:        req.Expiry,
		Holder:        req.Holder,
		CreditLimit:   req.CreditLimit,
		CreditBalance: req.CreditBalance,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	slogx.FromContext(ctx).Info("card added", "card_id", card.ID, "card_type", card.Type)
	httpx.WriteJSON(w, http.StatusCreated, toCard(card))
}

// HandleList returns the user's saved cards.
//
//	@Summary	List cards
//	@Tags		Cards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	spendlysdk.Card
//	@Router		/v1/cards [get].
func (h *CardsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	cards, err := h.CardService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]spendlysdk.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCard(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete removes one of the user's cards.
//
//	@Summary	Delete a card
//	@Tags		Cards
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Card ID"
//	@Success	204
//	@Failure	404	{object}	spendlysdk.APIError
//	@Router		/v1/cards/{id} [delete].
func (h *CardsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	if err := h.CardService.Delete(r.Context(), userID, idx.ID(r.PathValue("id"))); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
