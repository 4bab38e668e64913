package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
)

type paymentFixture struct {
	users    *UserService
	accounts *AccountService
	cards    *CardService
	bills    *BillService
	payments *PaymentService
	txs      *TransactionService

	user domain.User
	card domain.CreditCard
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	s := newTestStore(t)
	ctx := context.Background()

	f := &paymentFixture{
		users:    &UserService{Store: s},
		accounts: &AccountService{Store: s},
		cards:    &CardService{Store: s},
		bills:    &BillService{Store: s},
		payments: &PaymentService{Store: s},
		txs:      &TransactionService{Store: s},
	}

	user, err := register(ctx, f.users, "payer", "correct horse battery", "")
	require.NoError(t, err)
	f.user = user

	card, err := f.cards.Add(ctx, user.ID, AddCardRequest{
		Number: "4111111111111111",
		Expiry: "12/30",
		Holder: "Payer One",
	})
	require.NoError(t, err)
	f.card = card

	return f
}

func amt(t *testing.T, s string) domain.Amount {
	t.Helper()
	a, err := domain.ParseAmount(s)
	require.NoError(t, err)
	return a
}

func TestPayInFullDeletesBill(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "500"))
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	res, err := f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "500.00"))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaidInFull, res.Transaction.Status)
	require.Nil(t, res.Bill)
	require.Equal(t, "0.00", res.Balance.String())

	_, err = f.payments.Store.Bills().GetByID(ctx, bill.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	acct, err := f.accounts.Get(ctx, f.user.ID)
	require.NoError(t, err)
	require.True(t, acct.Balance.IsZero())
}

func TestPayPartialReducesPending(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "500"))
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	res, err := f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "200"))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPartiallyPaid, res.Transaction.Status)
	require.NotNil(t, res.Bill)
	require.Equal(t, amt(t, "300"), res.Bill.Pending)
	require.Equal(t, amt(t, "500"), res.Bill.Amount)
	require.Equal(t, amt(t, "300"), res.Balance)
}

func TestPayInsufficientFunds(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "100"))
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	res, err := f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "500"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.Equal(t, domain.StatusRejected, res.Transaction.Status)

	// Bill and balance untouched.
	got, err := f.payments.Store.Bills().GetByID(ctx, bill.ID)
	require.NoError(t, err)
	require.Equal(t, amt(t, "500"), got.Pending)

	acct, err := f.accounts.Get(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, amt(t, "100"), acct.Balance)

	// Rejections write nothing, not even a transaction record.
	history, err := f.txs.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestPayOverpaymentRejected(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "1000"))
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	_, err = f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "600"))
	require.ErrorIs(t, err, ErrOverpayment)

	// Nothing committed.
	acct, err := f.accounts.Get(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, amt(t, "1000"), acct.Balance)

	history, err := f.txs.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestPaySequenceSettlesBill(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "500"))
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	res, err := f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "200"))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPartiallyPaid, res.Transaction.Status)

	res, err = f.payments.Pay(ctx, f.user.ID, bill.ID, "", amt(t, "300"))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaidInFull, res.Transaction.Status)
	require.Equal(t, "0.00", res.Balance.String())

	history, err := f.txs.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, domain.CardVisa, history[0].CardType)
}

func TestPaySomeoneElsesBill(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	other, err := register(ctx, f.users, "other", "correct horse battery", "")
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	_, err = f.payments.Pay(ctx, other.ID, bill.ID, "", amt(t, "100"))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPayAccountNumberMismatch(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Deposit(ctx, f.user.ID, amt(t, "500"))
	require.NoError(t, err)

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	_, err = f.payments.Pay(ctx, f.user.ID, bill.ID, "not-the-number", amt(t, "100"))
	require.ErrorIs(t, err, store.ErrNotFound)

	acct, err := f.accounts.Get(ctx, f.user.ID)
	require.NoError(t, err)

	res, err := f.payments.Pay(ctx, f.user.ID, bill.ID, acct.Number, amt(t, "100"))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPartiallyPaid, res.Transaction.Status)
}

func TestPayValidation(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	bill, err := f.bills.Create(ctx, f.user.ID, f.card.ID, amt(t, "500"), "rent", "")
	require.NoError(t, err)

	_, err = f.payments.Pay(ctx, f.user.ID, bill.ID, "", 0)
	require.ErrorIs(t, err, ErrInvalidPayment)
}
