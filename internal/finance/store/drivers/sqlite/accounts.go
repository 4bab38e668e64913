package sqlite

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type accountsRepo struct {
	q querier
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accounts (id, user_id, number, balance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(a.ID), string(a.UserID), a.Number, int64(a.Balance),
		a.CreatedAt.Unix(), a.UpdatedAt.Unix(),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetByUserID(ctx context.Context, userID idx.ID) (domain.Account, error) {
	var (
		a                    domain.Account
		id, uid              string
		balance              int64
		createdAt, updatedAt int64
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, number, balance, created_at, updated_at
		FROM accounts WHERE user_id = ?`, string(userID),
	).Scan(&id, &uid, &a.Number, &balance, &createdAt, &updatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.ID = idx.ID(id)
	a.UserID = idx.ID(uid)
	a.Balance = domain.Amount(balance)
	a.CreatedAt = time.Unix(createdAt, 0).UTC()
	a.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return a, nil
}

func (r *accountsRepo) UpdateBalance(ctx context.Context, userID idx.ID, balance domain.Amount) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE accounts SET balance = ?, updated_at = ? WHERE user_id = ?`,
		int64(balance), time.Now().Unix(), string(userID),
	)
	if err != nil {
		return err
	}
	return mustAffect(res)
}
