package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/spendlyhq/spendly/pkg/idx"
)

// CardType is the detected card network.
type CardType string

const (
	CardVisa       CardType = "Visa"
	CardMasterCard CardType = "MasterCard"
	CardAmex       CardType = "American Express"
	CardDiscover   CardType = "Discover"
	CardUnknown    CardType = "Unknown"
)

// CreditCard stores only what the UI needs to render a saved card. The full
// number is used once for type detection and then reduced to the last four
// digits.
type CreditCard struct {
	ID       idx.ID
	UserID   idx.ID
	LastFour string
	Type     CardType
	Expiry   string
	Holder   string

	CreditLimit   Amount
	CreditBalance Amount

	CreatedAt time.Time
}

var (
	ErrInvalidCardNumber = errors.New("invalid card number")

	visaRe       = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	masterCardRe = regexp.MustCompile(`^5[1-5][0-9]{14}$`)
	amexRe       = regexp.MustCompile(`^3[47][0-9]{13}$`)
	discoverRe   = regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)
)

// DetectCardType classifies a card number by its network prefix. Numbers
// that match no network come back as Unknown, which is still storable.
func DetectCardType(number string) CardType {
	switch {
	case visaRe.MatchString(number):
		return CardVisa
	case masterCardRe.MatchString(number):
		return CardMasterCard
	case amexRe.MatchString(number):
		return CardAmex
	case discoverRe.MatchString(number):
		return CardDiscover
	default:
		return CardUnknown
	}
}

// NormalizeCardNumber strips spaces and dashes, then validates that only
// digits of a plausible length remain.
func NormalizeCardNumber(raw string) (string, error) {
	var b strings.Builder
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == ' ' || c == '-':
		default:
			return "", ErrInvalidCardNumber
		}
	}
	number := b.String()
	if len(number) < 12 || len(number) > 19 {
		return "", ErrInvalidCardNumber
	}
	return number, nil
}
