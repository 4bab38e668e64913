package service

import (
	"context"
	"errors"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var ErrInvalidBillAmount = errors.New("bill amount must be positive")

type BillService struct {
	Store store.Store
}

// Create records a new bill against one of the user's cards. Pending starts
// equal to the full amount.
func (s *BillService) Create(ctx context.Context, userID, cardID idx.ID, amount domain.Amount, description, dueDate string) (domain.Bill, error) {
	if !amount.IsPositive() {
		return domain.Bill{}, ErrInvalidBillAmount
	}

	card, err := s.Store.Cards().GetByID(ctx, cardID)
	if err != nil {
		return domain.Bill{}, err
	}
	if card.UserID != userID {
		return domain.Bill{}, store.ErrNotFound
	}

	now := time.Now().UTC()
	bill := domain.Bill{
		ID:          idx.New(),
		UserID:      userID,
		CardID:      cardID,
		Amount:      amount,
		Pending:     amount,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Bills().Create(ctx, bill); err != nil {
		return domain.Bill{}, err
	}
	return bill, nil
}

// List returns the user's outstanding bills.
func (s *BillService) List(ctx context.Context, userID idx.ID) ([]domain.Bill, error) {
	return s.Store.Bills().ListByUser(ctx, userID)
}
