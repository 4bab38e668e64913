package service

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type CardService struct {
	Store store.Store
}

// AddCardRequest carries the fields of a new card. CreditLimit and
// CreditBalance are decimal currency strings, empty means zero.
type AddCardRequest struct {
	Number        string
	Expiry        string
	Holder        string
	CreditLimit   string
	CreditBalance string
}

// Add registers a card. The full number is classified and discarded; only
// the last four digits are stored.
func (s *CardService) Add(ctx context.Context, userID idx.ID, req AddCardRequest) (domain.CreditCard, error) {
	normalized, err := domain.NormalizeCardNumber(req.Number)
	if err != nil {
		return domain.CreditCard{}, err
	}

	limit, err := parseOptionalAmount(req.CreditLimit)
	if err != nil {
		return domain.CreditCard{}, err
	}
	balance, err := parseOptionalAmount(req.CreditBalance)
	if err != nil {
		return domain.CreditCard{}, err
	}

	card := domain.CreditCard{
		ID:            idx.New(),
		UserID:        userID,
		LastFour:      normalized[len(normalized)-4:],
		Type:          domain.DetectCardType(normalized),
		Expiry:        req.Expiry,
		Holder:        req.Holder,
		CreditLimit:   limit,
		CreditBalance: balance,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Store.Cards().Create(ctx, card); err != nil {
		return domain.CreditCard{}, err
	}
	return card, nil
}

func parseOptionalAmount(s string) (domain.Amount, error) {
	if s == "" {
		return 0, nil
	}
	return domain.ParseAmount(s)
}

// List returns the user's cards.
func (s *CardService) List(ctx context.Context, userID idx.ID) ([]domain.CreditCard, error) {
	return s.Store.Cards().ListByUser(ctx, userID)
}

// Delete removes a card the user owns. Bills against the card cascade away
// with it.
func (s *CardService) Delete(ctx context.Context, userID, cardID idx.ID) error {
	card, err := s.Store.Cards().GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.UserID != userID {
		return store.ErrNotFound
	}
	return s.Store.Cards().Delete(ctx, cardID)
}
