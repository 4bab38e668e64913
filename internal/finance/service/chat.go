package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/llm"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var ErrEmptyMessage = errors.New("message must not be empty")

// spendingTriggers are the phrases that switch the assistant into
// spending-analysis mode. Matching is a case-insensitive substring check.
var spendingTriggers = []string{
	"spending trend",
	"where am i spending more",
}

const (
	genericPrompt = "You are a helpful personal finance assistant. Answer " +
		"general questions about budgeting, saving and credit cards. Do not " +
		"invent details about the user's own transactions."

	analysisPrompt = "You are a personal finance assistant. The user's " +
		"payment transactions follow as JSON. Analyze them and answer the " +
		"user's question about their spending:\n"
)

type ChatService struct {
	Store store.Store
	LLM   llm.Client

	// HistoryLimit caps how many past conversations List returns.
	HistoryLimit int
}

// ChatResult is the assistant's reply plus the persisted conversation id.
type ChatResult struct {
	Reply          string
	ConversationID idx.ID
}

// transactionSummary is the shape embedded into the analysis prompt.
type transactionSummary struct {
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	CardType      string `json:"card_type"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

// Chat relays a message to the assistant. Messages containing a spending
// trigger phrase get the user's transaction history embedded in the system
// prompt; everything else gets a generic assistant prompt with no account
// data.
func (s *ChatService) Chat(ctx context.Context, userID idx.ID, message string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatResult{}, ErrEmptyMessage
	}

	system := genericPrompt
	if containsTrigger(message) {
		txs, err := s.Store.Transactions().ListByUser(ctx, userID)
		if err != nil {
			return ChatResult{}, err
		}
		system = analysisPrompt + summarizeTransactions(txs)
	}

	reply, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: message},
	})
	if err != nil {
		return ChatResult{}, err
	}

	conv := domain.Conversation{
		ID:        idx.New(),
		UserID:    userID,
		Message:   message,
		Reply:     reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Conversations().Create(ctx, conv); err != nil {
		return ChatResult{}, err
	}

	return ChatResult{Reply: reply, ConversationID: conv.ID}, nil
}

// History returns the user's recent conversations, newest first.
func (s *ChatService) History(ctx context.Context, userID idx.ID) ([]domain.Conversation, error) {
	limit := s.HistoryLimit
	if limit <= 0 {
		limit = 50
	}
	return s.Store.Conversations().ListByUser(ctx, userID, limit)
}

func containsTrigger(message string) bool {
	lower := strings.ToLower(message)
	for _, trigger := range spendingTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

func summarizeTransactions(txs []domain.Transaction) string {
	summaries := make([]transactionSummary, 0, len(txs))
	for _, t := range txs {
		summaries = append(summaries, transactionSummary{
			TransactionID: string(t.ID),
			Amount:        t.Amount.String(),
			CardType:      string(t.CardType),
			Status:        string(t.Status),
			Date:          t.CreatedAt.Format(time.RFC3339),
		})
	}
	raw, err := json.Marshal(summaries)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
