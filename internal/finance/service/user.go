package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/cryptox"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("password too short")
	ErrForbidden         = errors.New("forbidden")
)

const minPasswordLength = 8

type UserService struct {
	Store store.Store
}

// RegisterRequest carries the fields of a signup.
type RegisterRequest struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}

// Register creates a user with a fresh zero-balance account in one
// transaction. The default role is standard.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < 3 || len(username) > 64 {
		return domain.User{}, ErrInvalidUsername
	}
	email := strings.TrimSpace(req.Email)
	if email != "" && !validEmail(email) {
		return domain.User{}, ErrInvalidEmail
	}
	password, role := req.Password, req.Role
	if len(password) < minPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	r := domain.RoleStandard
	if role != "" {
		parsed, err := domain.ParseRole(role)
		if err != nil {
			return domain.User{}, err
		}
		r = parsed
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	number, err := domain.NewAccountNumber()
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New(),
		Username:     username,
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
		Role:         r,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	account := domain.Account{
		ID:        idx.New(),
		UserID:    user.ID,
		Number:    number,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		return tx.Accounts().Create(ctx, account)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrDuplicateUsername
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByID fetches a user by id.
func (s *UserService) GetByID(ctx context.Context, userID idx.ID) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, userID)
}

// List returns all users. Callers gate this behind the privileged role.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().List(ctx)
}

// UpdateRequest carries the optional fields of a user edit.
type UpdateRequest struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
	Role      *string
}

// Update edits a user. Standard actors may only edit themselves and may not
// change roles; privileged actors may edit anyone.
func (s *UserService) Update(ctx context.Context, actor domain.User, targetID idx.ID, req UpdateRequest) (domain.User, error) {
	if actor.Role != domain.RolePrivileged && actor.ID != targetID {
		return domain.User{}, ErrForbidden
	}

	user, err := s.Store.Users().GetByID(ctx, targetID)
	if err != nil {
		return domain.User{}, err
	}

	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if len(name) < 3 || len(name) > 64 {
			return domain.User{}, ErrInvalidUsername
		}
		user.Username = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && !validEmail(email) {
			return domain.User{}, ErrInvalidEmail
		}
		user.Email = email
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			return domain.User{}, ErrWeakPassword
		}
		hash, err := cryptox.HashPassword(*req.Password)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		if actor.Role != domain.RolePrivileged {
			return domain.User{}, ErrForbidden
		}
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return domain.User{}, err
		}
		user.Role = role
	}

	if err := s.Store.Users().Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateUsername
		}
		return domain.User{}, err
	}
	return user, nil
}

// Delete removes a user. Standard actors may only delete themselves. Cards,
// bills, transactions and conversations go with them via FK cascade.
func (s *UserService) Delete(ctx context.Context, actor domain.User, targetID idx.ID) error {
	if actor.Role != domain.RolePrivileged && actor.ID != targetID {
		return ErrForbidden
	}
	return s.Store.Users().Delete(ctx, targetID)
}

// validEmail is a shape check, not RFC validation. The address is display
// data here, nothing is ever delivered to it.
func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
