package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/llm"
	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/slogx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

type ChatHandler struct {
	ChatService *service.ChatService
}

// HandleChat relays a message to the finance assistant.
//
//	@Summary	Chat with the finance assistant
//	@Description	Messages asking about spending trends have the user's transaction history embedded into the prompt; everything else is answered generically without account data.
//	@Tags		Chat
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		spendlysdk.ChatRequest	true	"Message"
//	@Success	200		{object}	spendlysdk.ChatResponse
//	@Failure	400		{object}	spendlysdk.APIError	"Empty message"
//	@Failure	502		{object}	spendlysdk.APIError	"Upstream completion failed"
//	@Failure	503		{object}	spendlysdk.APIError	"Relay disabled, no API key configured"
//	@Router		/v1/chat [post].
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req spendlysdk.ChatRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, "malformed json body")
		return
	}

	userID := idx.ID(httpx.UserIDFromCtx(ctx))
	result, err := h.ChatService.Chat(ctx, userID, req.Message)
	if err != nil {
		if writeChatError(w, err) {
			return
		}
		slogx.FromContext(ctx).Warn("chat relay failed", "err", err)
		spendlysdk.WriteError(w, http.StatusBadGateway, spendlysdk.ErrCodeServerError, "assistant unavailable")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, spendlysdk.ChatResponse{
		Reply:          result.Reply,
		ConversationID: string(result.ConversationID),
	})
}

// writeChatError handles the client-fault and disabled-relay cases;
// upstream failures fall through to a 502.
func writeChatError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		writeServiceError(w, err)
		return true
	case errors.Is(err, llm.ErrRelayDisabled):
		spendlysdk.WriteError(w, http.StatusServiceUnavailable,
			spendlysdk.ErrCodeServerError, "assistant is not configured")
		return true
	}
	return false
}

// HandleHistory returns recent conversations, newest first.
//
//	@Summary	Chat history
//	@Tags		Chat
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	chatHistoryEntry
//	@Router		/v1/chat/history [get].
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID := idx.ID(httpx.UserIDFromCtx(r.Context()))

	convs, err := h.ChatService.History(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]chatHistoryEntry, 0, len(convs))
	for _, c := range convs {
		out = append(out, chatHistoryEntry{
			ID:        string(c.ID),
			Message:   c.Message,
			Reply:     c.Reply,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type chatHistoryEntry struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Reply     string `json:"reply"`
	CreatedAt string `json:"created_at"`
}
