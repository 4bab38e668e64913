package domain

import (
	"time"

	"github.com/spendlyhq/spendly/pkg/idx"
)

// User is an account holder. PasswordHash is a PHC-formatted argon2id
// string and never leaves the store layer in responses.
type User struct {
	ID           idx.ID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role

	// TOTPSecret is set after MFA enrollment. MFAEnabled flips to true
	// only once the user proves possession with a live code.
	TOTPSecret string
	MFAEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
