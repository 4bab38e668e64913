package finance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh
// instance.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	health, err := client.GetLiveness(t.Context())

	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)

	t.Logf("Livez endpoint is healthy, version %s", health.Version)
}

// TestReadyzEndpoint verifies the readiness check reports its dependency
// checks.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	health, err := client.GetReadiness(t.Context())

	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	t.Logf("Readyz endpoint is healthy")
}

// TestJWKSEndpoint verifies token verification keys are published.
func TestJWKSEndpoint(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	jwks, err := client.GetJWKS(t.Context())

	require.NoError(t, err)
	require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")

	for _, key := range jwks.Keys {
		t.Logf("Key ID: %s, Algorithm: %s, Use: %s", key.Kid, key.Alg, key.Use)
	}
}
