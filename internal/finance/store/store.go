// Package store defines the persistence interfaces for the finance service.
// Drivers live under drivers/ and must map their native constraint errors to
// the sentinel errors declared here.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Store is the top-level persistence handle.
type Store interface {
	Users() UserRepository
	Accounts() AccountRepository
	Cards() CardRepository
	Bills() BillRepository
	Transactions() TransactionRepository
	Conversations() ConversationRepository

	// WithTx runs fn inside a single database transaction. The Tx passed to
	// fn exposes the same repositories bound to that transaction; any error
	// rolls everything back.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	ApplyMigrations() error
	Ping(ctx context.Context) error
	Close() error
}

// Tx is the transactional view of the store.
type Tx interface {
	Users() UserRepository
	Accounts() AccountRepository
	Bills() BillRepository
	Transactions() TransactionRepository
}

type UserRepository interface {
	Create(ctx context.Context, u domain.User) error
	GetByID(ctx context.Context, id idx.ID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id idx.ID) error
}

type AccountRepository interface {
	Create(ctx context.Context, a domain.Account) error
	GetByUserID(ctx context.Context, userID idx.ID) (domain.Account, error)
	UpdateBalance(ctx context.Context, userID idx.ID, balance domain.Amount) error
}

type CardRepository interface {
	Create(ctx context.Context, c domain.CreditCard) error
	GetByID(ctx context.Context, id idx.ID) (domain.CreditCard, error)
	ListByUser(ctx context.Context, userID idx.ID) ([]domain.CreditCard, error)
	Delete(ctx context.Context, id idx.ID) error
}

type BillRepository interface {
	Create(ctx context.Context, b domain.Bill) error
	GetByID(ctx context.Context, id idx.ID) (domain.Bill, error)
	ListByUser(ctx context.Context, userID idx.ID) ([]domain.Bill, error)
	UpdatePending(ctx context.Context, id idx.ID, pending domain.Amount) error
	Delete(ctx context.Context, id idx.ID) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t domain.Transaction) error
	ListByUser(ctx context.Context, userID idx.ID) ([]domain.Transaction, error)
}

type ConversationRepository interface {
	Create(ctx context.Context, c domain.Conversation) error
	ListByUser(ctx context.Context, userID idx.ID, limit int) ([]domain.Conversation, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
