package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/pkg/jwtx"
)

func newTestKeyManager(t *testing.T) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "spendly-test",
		Audience: []string{"spendly"},
		NumKeys:  1,
	})
	require.NoError(t, err)
	return km
}

func TestChainOrder(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mk("outer"), mk("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestAuthnMiddlewareRejectsMissingToken(t *testing.T) {
	km := newTestKeyManager(t)
	h := Chain(okHandler(), AuthnMiddleware(km.Verifier))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
}

func TestAuthnMiddlewarePopulatesContext(t *testing.T) {
	km := newTestKeyManager(t)
	signer := km.GetSigner()
	require.NotNil(t, signer)

	claims := jwtx.NewSessionClaims("user-1", "sess-1", "alice", "standard",
		jwtx.DefaultSessionTTL, "spendly-test", []string{"spendly"}, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	var gotID, gotName string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserIDFromCtx(r.Context())
		gotName = UsernameFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	Chain(inner, AuthnMiddleware(km.Verifier)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", gotID)
	require.Equal(t, "alice", gotName)
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	km := newTestKeyManager(t)
	signer := km.GetSigner()
	require.NotNil(t, signer)

	claims := jwtx.NewSessionClaims("user-2", "sess-2", "bob", "standard",
		jwtx.DefaultSessionTTL, "spendly-test", []string{"spendly"}, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	Chain(okHandler(), AuthnMiddleware(km.Verifier), RequireRole("privileged")).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := Chain(okHandler(), CORS([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSUnknownOrigin(t *testing.T) {
	h := Chain(okHandler(), CORS([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
