package service

import (
	"context"
	"errors"

	"github.com/pquerna/otp/totp"

	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/idx"
)

var (
	ErrMFAAlreadyEnabled = errors.New("mfa already enabled")
	ErrMFANotEnrolled    = errors.New("mfa not enrolled")
	ErrInvalidMFACode    = errors.New("invalid mfa code")
)

type MFAService struct {
	Store store.Store

	// Issuer appears in authenticator apps next to the account name.
	Issuer string
}

// Enrollment carries the provisioning material for an authenticator app.
type Enrollment struct {
	Secret     string
	OTPAuthURL string
}

// Enroll generates a TOTP secret for the user. MFA stays off until the user
// activates with a live code.
func (s *MFAService) Enroll(ctx context.Context, userID idx.ID) (Enrollment, error) {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return Enrollment{}, err
	}
	if user.MFAEnabled {
		return Enrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Username,
	})
	if err != nil {
		return Enrollment{}, err
	}

	user.TOTPSecret = key.Secret()
	if err := s.Store.Users().Update(ctx, user); err != nil {
		return Enrollment{}, err
	}

	return Enrollment{Secret: key.Secret(), OTPAuthURL: key.URL()}, nil
}

// Activate turns MFA on once the user proves possession of the secret.
func (s *MFAService) Activate(ctx context.Context, userID idx.ID, code string) error {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.MFAEnabled {
		return ErrMFAAlreadyEnabled
	}
	if user.TOTPSecret == "" {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidMFACode
	}

	user.MFAEnabled = true
	return s.Store.Users().Update(ctx, user)
}

// Disable turns MFA off. A live code is required so a stolen session cannot
// silently weaken the account.
func (s *MFAService) Disable(ctx context.Context, userID idx.ID, code string) error {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.MFAEnabled {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidMFACode
	}

	user.MFAEnabled = false
	user.TOTPSecret = ""
	return s.Store.Users().Update(ctx, user)
}
