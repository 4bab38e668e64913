package sqlite

import (
	"database/sql"

	"github.com/spendlyhq/spendly/internal/finance/store"
)

// txStore exposes the repositories bound to a single transaction.
type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Users() store.UserRepository               { return &usersRepo{q: t.tx} }
func (t *txStore) Accounts() store.AccountRepository         { return &accountsRepo{q: t.tx} }
func (t *txStore) Bills() store.BillRepository               { return &billsRepo{q: t.tx} }
func (t *txStore) Transactions() store.TransactionRepository { return &transactionsRepo{q: t.tx} }
