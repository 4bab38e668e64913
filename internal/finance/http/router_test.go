package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/internal/finance/llm"
	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/internal/finance/store/drivers/sqlite"
	"github.com/spendlyhq/spendly/pkg/cryptox"
	"github.com/spendlyhq/spendly/pkg/jwtx"
	"github.com/spendlyhq/spendly/pkg/slogx"
	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "spendly-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fakeLLM struct {
	reply string
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	return f.reply, nil
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "spendly-test",
		Audience: []string{"spendly"},
		NumKeys:  1,
	})
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "spendly", Env: "test"})

	r := NewRouter(km.KeySet, km.Verifier, "test", []string{"*"}, st, logger)
	r.AuthService = &service.AuthService{Store: st, Keys: km, Issuer: "spendly-test", Audience: "spendly"}
	r.UserService = &service.UserService{Store: st}
	r.MFAService = &service.MFAService{Store: st, Issuer: "spendly-test"}
	r.AccountService = &service.AccountService{Store: st}
	r.CardService = &service.CardService{Store: st}
	r.BillService = &service.BillService{Store: st}
	r.PaymentService = &service.PaymentService{Store: st}
	r.TransactionService = &service.TransactionService{Store: st}
	r.ChatService = &service.ChatService{Store: st, LLM: &fakeLLM{reply: "hello from the assistant"}}
	r.ApplyRoutes()
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func registerAndLogin(t *testing.T, r *Router, username, role string) (string, spendlysdk.User) {
	t.Helper()

	var user spendlysdk.User
	rec := doJSON(t, r, http.MethodPost, "/v1/auth/register", "",
		spendlysdk.RegisterRequest{Username: username, Password: "correct horse battery", Role: role}, &user)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var login spendlysdk.LoginResponse
	rec = doJSON(t, r, http.MethodPost, "/v1/auth/login", "",
		spendlysdk.LoginRequest{Username: username, Password: "correct horse battery"}, &login)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken, login.User
}

func TestRegisterLoginMe(t *testing.T) {
	r := newTestRouter(t)

	token, user := registerAndLogin(t, r, "alice", "")
	require.Equal(t, "standard", user.Role)

	var me spendlysdk.User
	rec := doJSON(t, r, http.MethodGet, "/v1/users/me", token, nil, &me)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", me.Username)
}

func TestLoginBadPassword(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "alice", "")

	rec := doJSON(t, r, http.MethodPost, "/v1/auth/login", "",
		spendlysdk.LoginRequest{Username: "alice", Password: "wrong password!"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var apiErr spendlysdk.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, spendlysdk.ErrCodeInvalidCredentials, apiErr.Code)
}

func TestLoginUnknownUsername(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/auth/login", "",
		spendlysdk.LoginRequest{Username: "nobody", Password: "whatever pass"}, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDuplicateRegister(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "alice", "")

	rec := doJSON(t, r, http.MethodPost, "/v1/auth/register", "",
		spendlysdk.RegisterRequest{Username: "alice", Password: "correct horse battery"}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserListRequiresPrivilegedRole(t *testing.T) {
	r := newTestRouter(t)

	standardToken, _ := registerAndLogin(t, r, "alice", "")
	rec := doJSON(t, r, http.MethodGet, "/v1/users", standardToken, nil, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, _ := registerAndLogin(t, r, "admin", "privileged")
	var users []spendlysdk.User
	rec = doJSON(t, r, http.MethodGet, "/v1/users", adminToken, nil, &users)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, users, 2)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/v1/users/me", "/v1/account", "/v1/cards", "/v1/bills", "/v1/transactions"} {
		rec := doJSON(t, r, http.MethodGet, path, "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestCardLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice", "")

	var card spendlysdk.Card
	rec := doJSON(t, r, http.MethodPost, "/v1/cards", token,
		spendlysdk.CreateCardRequest{CardNumber: "5105105105105100", Expiry: "11/29", Holder: "Alice A"}, &card)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "MasterCard", card.CardType)
	require.Equal(t, "5100", card.LastFour)

	var cards []spendlysdk.Card
	rec = doJSON(t, r, http.MethodGet, "/v1/cards", token, nil, &cards)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cards, 1)

	rec = doJSON(t, r, http.MethodDelete, "/v1/cards/"+card.ID, token, nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/v1/cards/"+card.ID, token, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBillPaymentFlow(t *testing.T) {
	r := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice", "")

	var card spendlysdk.Card
	rec := doJSON(t, r, http.MethodPost, "/v1/cards", token,
		spendlysdk.CreateCardRequest{CardNumber: "4111111111111111", Expiry: "11/29", Holder: "Alice A"}, &card)
	require.Equal(t, http.StatusCreated, rec.Code)

	var acct spendlysdk.Account
	rec = doJSON(t, r, http.MethodPost, "/v1/account/deposit", token,
		spendlysdk.DepositRequest{Amount: "500"}, &acct)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "500.00", acct.Balance)
	require.Len(t, acct.Number, 12)

	var bill spendlysdk.Bill
	rec = doJSON(t, r, http.MethodPost, "/v1/bills", token,
		spendlysdk.CreateBillRequest{CardID: card.ID, Amount: "500", Description: "rent"}, &bill)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "500.00", bill.Pending)

	var result spendlysdk.PaymentResult
	rec = doJSON(t, r, http.MethodPost, "/v1/bills/"+bill.ID+"/pay", token,
		spendlysdk.PayBillRequest{Amount: "500.00"}, &result)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Paid-in-full", result.Status)
	require.Nil(t, result.Bill)
	require.Equal(t, "0.00", result.Balance)

	var bills []spendlysdk.Bill
	rec = doJSON(t, r, http.MethodGet, "/v1/bills", token, nil, &bills)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, bills)

	var txs []spendlysdk.Transaction
	rec = doJSON(t, r, http.MethodGet, "/v1/transactions", token, nil, &txs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, txs, 1)
	require.Equal(t, "Visa", txs[0].CardType)
}

func TestBillPaymentInsufficientFunds(t *testing.T) {
	r := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice", "")

	var card spendlysdk.Card
	doJSON(t, r, http.MethodPost, "/v1/cards", token,
		spendlysdk.CreateCardRequest{CardNumber: "4111111111111111", Expiry: "11/29", Holder: "Alice A"}, &card)
	doJSON(t, r, http.MethodPost, "/v1/account/deposit", token,
		spendlysdk.DepositRequest{Amount: "100"}, nil)

	var bill spendlysdk.Bill
	doJSON(t, r, http.MethodPost, "/v1/bills", token,
		spendlysdk.CreateBillRequest{CardID: card.ID, Amount: "500"}, &bill)

	rec := doJSON(t, r, http.MethodPost, "/v1/bills/"+bill.ID+"/pay", token,
		spendlysdk.PayBillRequest{Amount: "500"}, nil)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var apiErr spendlysdk.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, spendlysdk.ErrCodeInsufficientFunds, apiErr.Code)

	// Rejection leaves no trace in the transaction history.
	var txs []spendlysdk.Transaction
	rec = doJSON(t, r, http.MethodGet, "/v1/transactions", token, nil, &txs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, txs)
}

func TestChatEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice", "")

	var resp spendlysdk.ChatResponse
	rec := doJSON(t, r, http.MethodPost, "/v1/chat", token,
		spendlysdk.ChatRequest{Message: "what is my spending trend?"}, &resp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "hello from the assistant", resp.Reply)
	require.NotEmpty(t, resp.ConversationID)

	var history []chatHistoryEntry
	rec = doJSON(t, r, http.MethodGet, "/v1/chat/history", token, nil, &history)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, history, 1)
}

func TestSystemEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var jwks struct {
		Keys []map[string]any `json:"keys"`
	}
	rec = doJSON(t, r, http.MethodGet, "/.well-known/jwks.json", "", nil, &jwks)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, jwks.Keys)
	require.Equal(t, "OKP", jwks.Keys[0]["kty"])
}
