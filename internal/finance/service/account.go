package service

import (
	"context"
	"errors"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var ErrInvalidDeposit = errors.New("deposit must be positive")

type AccountService struct {
	Store store.Store
}

// Get returns the user's funding account.
func (s *AccountService) Get(ctx context.Context, userID idx.ID) (domain.Account, error) {
	return s.Store.Accounts().GetByUserID(ctx, userID)
}

// Deposit adds funds to the account balance inside a transaction so
// concurrent deposits cannot lose an update.
func (s *AccountService) Deposit(ctx context.Context, userID idx.ID, amount domain.Amount) (domain.Account, error) {
	if !amount.IsPositive() {
		return domain.Account{}, ErrInvalidDeposit
	}

	var updated domain.Account
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		acct, err := tx.Accounts().GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		acct.Balance += amount
		if err := tx.Accounts().UpdateBalance(ctx, userID, acct.Balance); err != nil {
			return err
		}
		acct.UpdatedAt = time.Now().UTC()
		updated = acct
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}
	return updated, nil
}
