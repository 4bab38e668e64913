package sqlite

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type transactionsRepo struct {
	q querier
}

func (r *transactionsRepo) Create(ctx context.Context, t domain.Transaction) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, bill_id, card_type, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(t.ID), string(t.UserID), string(t.BillID),
		string(t.CardType), int64(t.Amount), string(t.Status), t.CreatedAt.Unix(),
	)
	return mapConstraint(err)
}

func (r *transactionsRepo) ListByUser(ctx context.Context, userID idx.ID) ([]domain.Transaction, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, bill_id, card_type, amount, status, created_at
		FROM transactions WHERE user_id = ? ORDER BY created_at DESC`, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			t                         domain.Transaction
			id, uid, billID, cardType string
			status                    string
			amount, createdAt         int64
		)
		if err := rows.Scan(&id, &uid, &billID, &cardType, &amount, &status, &createdAt); err != nil {
			return nil, err
		}
		t.ID = idx.ID(id)
		t.UserID = idx.ID(uid)
		t.BillID = idx.ID(billID)
		t.CardType = domain.CardType(cardType)
		t.Amount = domain.Amount(amount)
		t.Status = domain.TransactionStatus(status)
		t.CreatedAt = time.Unix(createdAt, 0).UTC()
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
