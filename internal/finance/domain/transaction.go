package domain

import (
	"time"

	"github.com/spendlyhq/spendly/pkg/idx"
)

// TransactionStatus records the outcome of a payment attempt.
type TransactionStatus string

const (
	StatusRejected      TransactionStatus = "Rejected"
	StatusPartiallyPaid TransactionStatus = "Partially-paid"
	StatusPaidInFull    TransactionStatus = "Paid-in-full"
)

// Transaction is an immutable record of a payment attempt, kept even when
// the bill it paid has been deleted.
type Transaction struct {
	ID       idx.ID
	UserID   idx.ID
	BillID   idx.ID
	CardType CardType
	Amount   Amount
	Status   TransactionStatus

	CreatedAt time.Time
}
