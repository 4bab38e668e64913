package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/spendlyhq/spendly/pkg/idx"
)

// Account is a user's funding balance. Exactly one per user, created at
// registration with a zero balance. Number is the user-facing account
// number quoted when paying bills.
type Account struct {
	ID      idx.ID
	UserID  idx.ID
	Number  string
	Balance Amount

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccountNumber generates a random 12-digit account number. Uniqueness
// is enforced by the store, collisions at this keyspace are not a concern.
func NewAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1e12))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%012d", n), nil
}
