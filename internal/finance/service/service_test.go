package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/internal/finance/domain"
	"github.com/spendlyhq/spendly/internal/finance/store/drivers/sqlite"
	"github.com/spendlyhq/spendly/pkg/cryptox"
	"github.com/spendlyhq/spendly/pkg/jwtx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "spendly-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func register(ctx context.Context, svc *UserService, username, password, role string) (domain.User, error) {
	return svc.Register(ctx, RegisterRequest{
		Username: username,
		Password: password,
		Role:     role,
	})
}

func newTestKeys(t *testing.T) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "spendly-test",
		Audience: []string{"spendly"},
		NumKeys:  1,
	})
	require.NoError(t, err)
	return km
}
