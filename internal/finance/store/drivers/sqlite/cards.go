package sqlite

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type cardsRepo struct {
	q querier
}

const cardColumns = `id, user_id, last_four, card_type, expiry, holder, credit_limit, credit_balance, created_at`

func (r *cardsRepo) Create(ctx context.Context, c domain.CreditCard) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO cards (`+cardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(c.ID), string(c.UserID), c.LastFour, string(c.Type),
		c.Expiry, c.Holder, int64(c.CreditLimit), int64(c.CreditBalance),
		c.CreatedAt.Unix(),
	)
	return mapConstraint(err)
}

func (r *cardsRepo) GetByID(ctx context.Context, id idx.ID) (domain.CreditCard, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, string(id))
	return scanCard(row)
}

func (r *cardsRepo) ListByUser(ctx context.Context, userID idx.ID) ([]domain.CreditCard, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE user_id = ? ORDER BY created_at`, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.CreditCard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *cardsRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, string(id))
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func scanCard(row rowScanner) (domain.CreditCard, error) {
	var (
		c                     domain.CreditCard
		id, uid, cardType     string
		limit, bal, createdAt int64
	)
	err := row.Scan(&id, &uid, &c.LastFour, &cardType, &c.Expiry, &c.Holder,
		&limit, &bal, &createdAt)
	if err != nil {
		return domain.CreditCard{}, mapNotFound(err)
	}
	c.ID = idx.ID(id)
	c.UserID = idx.ID(uid)
	c.Type = domain.CardType(cardType)
	c.CreditLimit = domain.Amount(limit)
	c.CreditBalance = domain.Amount(bal)
	c.CreatedAt = time.Unix(createdAt, 0).UTC()
	return c, nil
}
