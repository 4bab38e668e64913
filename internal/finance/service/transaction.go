package service

import (
	"context"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type TransactionService struct {
	Store store.Store
}

// List returns the user's payment history, newest first.
func (s *TransactionService) List(ctx context.Context, userID idx.ID) ([]domain.Transaction, error) {
	return s.Store.Transactions().ListByUser(ctx, userID)
}
