package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/llm"
)

type fakeLLM struct {
	reply    string
	err      error
	messages []llm.Message
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.messages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatGenericMessage(t *testing.T) {
	f := newPaymentFixture(t)
	fake := &fakeLLM{reply: "start a budget"}
	chat := &ChatService{Store: f.payments.Store, LLM: fake}
	ctx := context.Background()

	res, err := chat.Chat(ctx, f.user.ID, "how do credit cards work?")
	require.NoError(t, err)
	require.Equal(t, "start a budget", res.Reply)
	require.NotEmpty(t, res.ConversationID)

	// Generic questions never embed transaction data.
	require.Len(t, fake.messages, 2)
	require.Equal(t, llm.RoleSystem, fake.messages[0].Role)
	require.NotContains(t, fake.messages[0].Content, "transaction_id")

	history, err := chat.History(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "how do credit cards work?", history[0].Message)
}

func TestChatSpendingTriggerEmbedsTransactions(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "500"))
	require.NoError(t, err)
	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)
	_, err = f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "500"))
	require.NoError(t, err)

	fake := &fakeLLM{reply: "most of it went to rent"}
	chat := &ChatService{Store: f.payments.Store, LLM: fake}

	res, err := chat.Chat(ctx, f.user.ID, "What is my SPENDING TREND this month?")
	require.NoError(t, err)
	require.Equal(t, "most of it went to rent", res.Reply)

	system := fake.messages[0].Content
	require.Contains(t, system, "transaction_id")
	require.Contains(t, system, `"amount":"500.00"`)
	require.Contains(t, system, "Visa")
	require.Contains(t, system, string(domain.StatusPaidInFull))
}

func TestChatTriggerPhrases(t *testing.T) {
	require.True(t, containsTrigger("show my spending trend"))
	require.True(t, containsTrigger("Where am I spending more?"))
	require.False(t, containsTrigger("what is a spending limit?"))
	require.False(t, containsTrigger("hello"))
}

func TestChatEmptyMessage(t *testing.T) {
	f := newPaymentFixture(t)
	chat := &ChatService{Store: f.payments.Store, LLM: &fakeLLM{}}

	_, err := chat.Chat(context.Background(), f.user.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestChatUpstreamFailureNotPersisted(t *testing.T) {
	f := newPaymentFixture(t)
	fake := &fakeLLM{err: llm.ErrEmptyCompletion}
	chat := &ChatService{Store: f.payments.Store, LLM: fake}
	ctx := context.Background()

	_, err := chat.Chat(ctx, f.user.ID, "hello")
	require.Error(t, err)

	history, err := chat.History(ctx, f.user.ID)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestSummarizeTransactionsShape(t *testing.T) {
	out := summarizeTransactions(nil)
	require.Equal(t, "[]", out)
	require.False(t, strings.Contains(out, "null"))
}
