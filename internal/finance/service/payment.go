package service

import (
	"context"
	"errors"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidPayment    = errors.New("payment must be positive")
	ErrOverpayment       = errors.New("payment exceeds pending amount")
)

type PaymentService struct {
	Store store.Store
}

// PaymentResult reports the outcome of a payment attempt. Bill is nil when
// the bill was settled in full and deleted.
type PaymentResult struct {
	Transaction domain.Transaction
	Bill        *domain.Bill
	Balance     domain.Amount
}

// Pay applies amount from the user's account toward a bill. The balance
// check, bill update, account debit and transaction record all commit in a
// single database transaction. Insufficient funds reject the payment with
// no writes at all; the Rejected status only appears in the result.
//
// accountNumber is optional; when given it must match the user's account
// or the payment fails as NotFound.
func (s *PaymentService) Pay(ctx context.Context, userID, billID idx.ID, accountNumber string, amount domain.Amount) (PaymentResult, error) {
	if !amount.IsPositive() {
		return PaymentResult{}, ErrInvalidPayment
	}

	// Card type is immutable, so reading it outside the transaction is safe.
	bill, err := s.Store.Bills().GetByID(ctx, billID)
	if err != nil {
		return PaymentResult{}, err
	}
	if bill.UserID != userID {
		return PaymentResult{}, store.ErrNotFound
	}
	card, err := s.Store.Cards().GetByID(ctx, bill.CardID)
	if err != nil {
		return PaymentResult{}, err
	}

	var (
		result   PaymentResult
		rejected bool
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		bill, err := tx.Bills().GetByID(ctx, billID)
		if err != nil {
			return err
		}
		if amount > bill.Pending {
			return ErrOverpayment
		}

		acct, err := tx.Accounts().GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if accountNumber != "" && acct.Number != accountNumber {
			return store.ErrNotFound
		}

		now := time.Now().UTC()
		record := domain.Transaction{
			ID:        idx.New(),
			UserID:    userID,
			BillID:    billID,
			CardType:  card.Type,
			Amount:    amount,
			CreatedAt: now,
		}

		if acct.Balance < amount {
			// Nothing is written on a rejection.
			record.Status = domain.StatusRejected
			result = PaymentResult{Transaction: record, Bill: &bill, Balance: acct.Balance}
			rejected = true
			return nil
		}

		remaining := bill.Pending - amount
		newBalance := acct.Balance - amount

		if remaining.IsZero() {
			record.Status = domain.StatusPaidInFull
			if err := tx.Bills().Delete(ctx, billID); err != nil {
				return err
			}
			result.Bill = nil
		} else {
			record.Status = domain.StatusPartiallyPaid
			if err := tx.Bills().UpdatePending(ctx, billID, remaining); err != nil {
				return err
			}
			bill.Pending = remaining
			bill.UpdatedAt = now
			result.Bill = &bill
		}

		if err := tx.Accounts().UpdateBalance(ctx, userID, newBalance); err != nil {
			return err
		}
		if err := tx.Transactions().Create(ctx, record); err != nil {
			return err
		}

		result.Transaction = record
		result.Balance = newBalance
		return nil
	})
	if err != nil {
		return PaymentResult{}, err
	}
	if rejected {
		return result, ErrInsufficientFunds
	}
	return result, nil
}
