package app

import (
	"log/slog"

	"github.com/spendlyhq/spendly/pkg/jwtx"
)

// initSessionKeys builds the ephemeral EdDSA key manager used to sign and
// verify session tokens. Keys are regenerated on every restart, which
// invalidates outstanding sessions; with a one-hour TTL that is an
// acceptable trade against managing key storage.
func initSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   cfg.Issuer,
		Audience: []string{cfg.Audience},
		NumKeys:  cfg.NumKeys,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("session keys generated", "num_keys", km.NumSigners(), "alg", "EdDSA")
	return km, nil
}
