package domain

import (
	"time"

	"github.com/spendlyhq/spendly/pkg/idx"
)

// Bill is an outstanding charge against a card. Amount is the original
// total, Pending is what remains to be paid. A bill is deleted the moment
// Pending reaches zero.
type Bill struct {
	ID          idx.ID
	UserID      idx.ID
	CardID      idx.ID
	Amount      Amount
	Pending     Amount
	Description string
	DueDate     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
