package sqlite

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type billsRepo struct {
	q querier
}

const billColumns = `id, user_id, card_id, amount, pending, description, due_date, created_at, updated_at`

func (r *billsRepo) Create(ctx context.Context, b domain.Bill) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO bills (id, user_id, card_id, amount, pending, description, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(b.ID), string(b.UserID), string(b.CardID),
		int64(b.Amount), int64(b.Pending), b.Description, b.DueDate,
		b.CreatedAt.Unix(), b.UpdatedAt.Unix(),
	)
	return mapConstraint(err)
}

func (r *billsRepo) GetByID(ctx context.Context, id idx.ID) (domain.Bill, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+billColumns+` FROM bills WHERE id = ?`, string(id))
	return scanBill(row)
}

func (r *billsRepo) ListByUser(ctx context.Context, userID idx.ID) ([]domain.Bill, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+billColumns+` FROM bills WHERE user_id = ? ORDER BY created_at`, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

func (r *billsRepo) UpdatePending(ctx context.Context, id idx.ID, pending domain.Amount) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE bills SET pending = ?, updated_at = ? WHERE id = ?`,
		int64(pending), time.Now().Unix(), string(id),
	)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *billsRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM bills WHERE id = ?`, string(id))
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func scanBill(row rowScanner) (domain.Bill, error) {
	var (
		b                    domain.Bill
		id, uid, cardID      string
		amount, pending      int64
		createdAt, updatedAt int64
	)
	err := row.Scan(&id, &uid, &cardID, &amount, &pending,
		&b.Description, &b.DueDate, &createdAt, &updatedAt)
	if err != nil {
		return domain.Bill{}, mapNotFound(err)
	}
	b.ID = idx.ID(id)
	b.UserID = idx.ID(uid)
	b.CardID = idx.ID(cardID)
	b.Amount = domain.Amount(amount)
	b.Pending = domain.Amount(pending)
	b.CreatedAt = time.Unix(createdAt, 0).UTC()
	b.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return b, nil
}
