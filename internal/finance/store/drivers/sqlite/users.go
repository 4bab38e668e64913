package sqlite

import (
	"context"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/pkg/idx"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, username, email, first_name, last_name, password_hash, role, totp_secret, mfa_enabled, created_at, updated_at`

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, username, email, first_name, last_name, password_hash, role, totp_secret, mfa_enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(u.ID), u.Username, u.Email, u.FirstName, u.LastName,
		u.PasswordHash, string(u.Role),
		u.TOTPSecret, u.MFAEnabled, u.CreatedAt.Unix(), u.UpdatedAt.Unix(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, string(id))
	return scanUser(row)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u domain.User) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET username = ?, email = ?, first_name = ?, last_name = ?,
		    password_hash = ?, role = ?, totp_secret = ?, mfa_enabled = ?, updated_at = ?
		WHERE id = ?`,
		u.Username, u.Email, u.FirstName, u.LastName,
		u.PasswordHash, string(u.Role), u.TOTPSecret, u.MFAEnabled,
		time.Now().Unix(), string(u.ID),
	)
	if err != nil {
		return mapConstraint(err)
	}
	return mustAffect(res)
}

func (r *usersRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, string(id))
	if err != nil {
		return err
	}
	return mustAffect(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                    domain.User
		id, role             string
		createdAt, updatedAt int64
	)
	err := row.Scan(&id, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.PasswordHash, &role,
		&u.TOTPSecret, &u.MFAEnabled, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ID = idx.ID(id)
	u.Role = domain.Role(role)
	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	u.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return u, nil
}
