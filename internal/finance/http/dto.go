package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

func toUser(u domain.User) spendlysdk.User {
	return spendlysdk.User{
		ID:         string(u.ID),
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role.String(),
		MFAEnabled: u.MFAEnabled,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

func toAccount(a domain.Account) spendlysdk.Account {
	return spendlysdk.Account{
		ID:        string(a.ID),
		UserID:    string(a.UserID),
		Number:    a.Number,
		Balance:   a.Balance.String(),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

func toCard(c domain.CreditCard) spendlysdk.Card {
	return spendlysdk.Card{
		ID:            string(c.ID),
		UserID:        string(c.UserID),
		LastFour:      c.LastFour,
		CardType:      string(c.Type),
		Expiry:        c.Expiry,
		Holder:        c.Holder,
		CreditLimit:   c.CreditLimit.String(),
		CreditBalance: c.CreditBalance.String(),
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func toBill(b domain.Bill) spendlysdk.Bill {
	return spendlysdk.Bill{
		ID:          string(b.ID),
		UserID:      string(b.UserID),
		CardID:      string(b.CardID),
		Amount:      b.Amount.String(),
		Pending:     b.Pending.String(),
		Description: b.Description,
		DueDate:     b.DueDate,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func toTransaction(t domain.Transaction) spendlysdk.Transaction {
	return spendlysdk.Transaction{
		ID:        string(t.ID),
		UserID:    string(t.UserID),
		BillID:    string(t.BillID),
		CardType:  string(t.CardType),
		Amount:    t.Amount.String(),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// writeServiceError translates service and store sentinels into the API
// error envelope. Unrecognized errors become opaque 500s.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		spendlysdk.WriteError(w, http.StatusNotFound, spendlysdk.ErrCodeNotFound, "resource not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		spendlysdk.WriteError(w, http.StatusUnauthorized, spendlysdk.ErrCodeInvalidCredentials, "invalid username or password")
	case errors.Is(err, service.ErrMFARequired):
		spendlysdk.WriteError(w, http.StatusUnauthorized, spendlysdk.ErrCodeMFARequired, "an mfa code is required")
	case errors.Is(err, service.ErrDuplicateUsername):
		spendlysdk.WriteError(w, http.StatusConflict, spendlysdk.ErrCodeDuplicateUsername, "username already taken")
	case errors.Is(err, service.ErrForbidden):
		spendlysdk.WriteError(w, http.StatusForbidden, spendlysdk.ErrCodeForbidden, "not allowed")
	case errors.Is(err, service.ErrInsufficientFunds):
		spendlysdk.WriteError(w, http.StatusPaymentRequired, spendlysdk.ErrCodeInsufficientFunds, "account balance is lower than the payment amount")
	case errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidDeposit),
		errors.Is(err, service.ErrInvalidBillAmount),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrOverpayment),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrMFAAlreadyEnabled),
		errors.Is(err, service.ErrMFANotEnrolled),
		errors.Is(err, service.ErrInvalidMFACode),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCardNumber),
		errors.Is(err, domain.ErrUnknownRole):
		spendlysdk.WriteError(w, http.StatusBadRequest, spendlysdk.ErrCodeInvalidRequest, err.Error())
	default:
		spendlysdk.WriteError(w, http.StatusInternalServerError, spendlysdk.ErrCodeServerError, "internal error")
	}
}
