package sqlite

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type conversationsRepo struct {
	q querier
}

func (r *conversationsRepo) Create(ctx context.Context, c domain.Conversation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO conversations (id, user_id, message, reply, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		string(c.ID), string(c.UserID), c.Message, c.Reply, c.CreatedAt.Unix(),
	)
	return mapConstraint(err)
}

func (r *conversationsRepo) ListByUser(ctx context.Context, userID idx.ID, limit int) ([]domain.Conversation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, message, reply, created_at
		FROM conversations WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ?`, string(userID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var (
			c         domain.Conversation
			id, uid   string
			createdAt int64
		)
		if err := rows.Scan(&id, &uid, &c.Message, &c.Reply, &createdAt); err != nil {
			return nil, err
		}
		c.ID = idx.ID(id)
		c.UserID = idx.ID(uid)
		c.CreatedAt = time.Unix(createdAt, 0).UTC()
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *conversationsRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM conversations WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
