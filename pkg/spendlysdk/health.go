package spendlysdk

import (
	"context"
	"net/http"

	"github.com/spendlyhq/spendly/pkg/jwtx"
)

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the JSON Web Key Set served at /.well-known/jwks.json.
type JWKSResponse = jwtx.JWKS

// GetLiveness checks whether the process is up.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var h HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &h)
	return h, err
}

// GetReadiness checks whether the service can reach its dependencies.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var h HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &h)
	return h, err
}

// GetJWKS fetches the token verification keys.
func (c *Client) GetJWKS(ctx context.Context) (JWKSResponse, error) {
	var jwks JWKSResponse
	err := c.do(ctx, http.MethodGet, "/.well-known/jwks.json", nil, &jwks)
	return jwks, err
}
