package service

import (
	"context"
	"errors"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/cryptox"
	"github.com/spendlyhq/spendly/pkg/idx"
	"github.com/spendlyhq/spendly/pkg/jwtx"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMFARequired        = errors.New("mfa code required")
)

type AuthService struct {
	Store store.Store
	Keys  *jwtx.KeyManager

	Issuer   string
	Audience string
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresIn int64
	User      domain.User
}

// Login verifies the password and, when the user has MFA enabled, a live
// TOTP code. An unknown username surfaces as NotFound, a wrong password as
// InvalidCredentials. A missing code yields ErrMFARequired so the client
// can prompt; a wrong code is indistinguishable from a bad password.
func (s *AuthService) Login(ctx context.Context, username, password, otpCode string) (Session, error) {
	user, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	if user.MFAEnabled {
		if otpCode == "" {
			return Session{}, ErrMFARequired
		}
		if !totp.Validate(otpCode, user.TOTPSecret) {
			return Session{}, ErrInvalidCredentials
		}
	}

	return s.issue(user)
}

func (s *AuthService) issue(user domain.User) (Session, error) {
	signer := s.Keys.GetSigner()
	if signer == nil {
		return Session{}, jwtx.ErrNoKey
	}

	claims := jwtx.NewSessionClaims(
		string(user.ID), string(idx.New()), user.Username, user.Role.String(),
		jwtx.DefaultSessionTTL, s.Issuer, []string{s.Audience}, time.Now(),
	)
	token, err := signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:     token,
		ExpiresIn: int64(jwtx.DefaultSessionTTL.Seconds()),
		User:      user,
	}, nil
}
