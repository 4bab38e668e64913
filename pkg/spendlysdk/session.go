package spendlysdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &u)
	return u, err
}

// Login exchanges credentials for a session token. On success the token is
// stored on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &resp); err != nil {
		return LoginResponse{}, err
	}
	c.token = resp.AccessToken
	return resp, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, &u)
	return u, err
}

// UpdateUser edits a user. Standard users may only edit themselves.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	var u User
	err := c.do(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(id), req, &u)
	return u, err
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(id), nil, nil)
}

// ListUsers returns all users. Privileged role required.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/v1/users", nil, &users)
	return users, err
}

// MFAEnroll starts TOTP enrollment for the authenticated user.
func (c *Client) MFAEnroll(ctx context.Context) (MFAEnrollResponse, error) {
	var resp MFAEnrollResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/mfa/enroll", nil, &resp)
	return resp, err
}

// MFAActivate confirms enrollment with a live TOTP code.
func (c *Client) MFAActivate(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/mfa/activate", MFAActivateRequest{Code: code}, nil)
}

// MFADisable turns off the TOTP second factor.
func (c *Client) MFADisable(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/mfa/disable", MFAActivateRequest{Code: code}, nil)
}

// Account returns the authenticated user's funding account.
func (c *Client) Account(ctx context.Context) (Account, error) {
	var a Account
	err := c.do(ctx, http.MethodGet, "/v1/account", nil, &a)
	return a, err
}

// Deposit adds funds to the account.
func (c *Client) Deposit(ctx context.Context, amount string) (Account, error) {
	var a Account
	err := c.do(ctx, http.MethodPost, "/v1/account/deposit", DepositRequest{Amount: amount}, &a)
	return a, err
}

// AddCard registers a credit card.
func (c *Client) AddCard(ctx context.Context, req CreateCardRequest) (Card, error) {
	var card Card
	err := c.do(ctx, http.MethodPost, "/v1/cards", req, &card)
	return card, err
}

// ListCards returns the user's cards.
func (c *Client) ListCards(ctx context.Context) ([]Card, error) {
	var cards []Card
	err := c.do(ctx, http.MethodGet, "/v1/cards", nil, &cards)
	return cards, err
}

// DeleteCard removes a card.
func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/cards/"+url.PathEscape(id), nil, nil)
}

// CreateBill records a new bill against a card.
func (c *Client) CreateBill(ctx context.Context, req CreateBillRequest) (Bill, error) {
	var b Bill
	err := c.do(ctx, http.MethodPost, "/v1/bills", req, &b)
	return b, err
}

// ListBills returns outstanding bills.
func (c *Client) ListBills(ctx context.Context) ([]Bill, error) {
	var bills []Bill
	err := c.do(ctx, http.MethodGet, "/v1/bills", nil, &bills)
	return bills, err
}

// PayBill pays an amount toward a bill from the account balance.
func (c *Client) PayBill(ctx context.Context, billID, amount string) (PaymentResult, error) {
	var res PaymentResult
	err := c.do(ctx, http.MethodPost, "/v1/bills/"+url.PathEscape(billID)+"/pay",
		PayBillRequest{Amount: amount}, &res)
	return res, err
}

// ListTransactions returns the user's payment history.
func (c *Client) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	err := c.do(ctx, http.MethodGet, "/v1/transactions", nil, &txs)
	return txs, err
}

// Chat sends a message to the finance assistant.
func (c *Client) Chat(ctx context.Context, message string) (ChatResponse, error) {
	var resp ChatResponse
	err := c.do(ctx, http.MethodPost, "/v1/chat", ChatRequest{Message: message}, &resp)
	return resp, err
}
