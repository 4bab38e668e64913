package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Amount is a money value in cents. All balance arithmetic happens in
// integer cents so repeated partial payments never accumulate float drift.
type Amount int64

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a decimal string like "50", "50.5" or "50.00" into
// cents. More than two fractional digits, negatives and empty strings are
// rejected.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, ErrInvalidAmount
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if frac == "" {
			return 0, ErrInvalidAmount
		}
	}
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}

	var cents int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0, ErrInvalidAmount
		}
		cents = cents*10 + int64(c-'0')
		if cents > 1<<50 {
			return 0, ErrInvalidAmount
		}
	}
	cents *= 100

	mult := int64(10)
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, ErrInvalidAmount
		}
		cents += int64(c-'0') * mult
		mult /= 10
	}
	return Amount(cents), nil
}

// String renders the amount as a fixed two-decimal string, e.g. "50.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (a Amount) IsZero() bool     { return a == 0 }
func (a Amount) IsPositive() bool { return a > 0 }
