package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitProfile describes a named limiter configuration. Profiles carry
// env overrides so deployments (and the e2e suite) can tune them without a
// rebuild.
type RateLimitProfile struct {
	Name  string
	RPS   float64
	Burst int
}

var (
	// RateLimitStrict protects credential endpoints (login, register).
	RateLimitStrict = RateLimitProfile{Name: "STRICT", RPS: 0.5, Burst: 5}

	// RateLimitModerate covers mutating authenticated endpoints.
	RateLimitModerate = RateLimitProfile{Name: "MODERATE", RPS: 5, Burst: 20}

	// RateLimitLenient covers read-heavy authenticated endpoints.
	RateLimitLenient = RateLimitProfile{Name: "LENIENT", RPS: 20, Burst: 60}

	// RateLimitPublic covers unauthenticated discovery endpoints (JWKS, health).
	RateLimitPublic = RateLimitProfile{Name: "PUBLIC", RPS: 50, Burst: 100}
)

// resolved applies SPENDLY_RATELIMIT_<NAME>_RPS / _BURST overrides.
func (p RateLimitProfile) resolved() (float64, int) {
	rps, burst := p.RPS, p.Burst
	if v := os.Getenv("SPENDLY_RATELIMIT_" + p.Name + "_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	if v := os.Getenv("SPENDLY_RATELIMIT_" + p.Name + "_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}
	return rps, burst
}

// KeyFunc extracts the bucket key for a request.
type KeyFunc func(*http.Request) string

// KeyByIP buckets by client IP. Used on unauthenticated endpoints.
func KeyByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// KeyByUser buckets by the authenticated user ID, falling back to IP for
// requests that somehow reach the limiter unauthenticated.
func KeyByUser(r *http.Request) string {
	if id := UserIDFromCtx(r.Context()); id != "" {
		return id
	}
	return KeyByIP(r)
}

// RateLimitByIP enforces the profile per client IP.
func RateLimitByIP(profile RateLimitProfile) Middleware {
	return RateLimit(profile, KeyByIP)
}

// RateLimitByUser enforces the profile per authenticated user.
func RateLimitByUser(profile RateLimitProfile) Middleware {
	return RateLimit(profile, KeyByUser)
}

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimit returns a middleware enforcing the profile per key. Idle buckets
// are evicted after an hour so the map does not grow without bound.
func RateLimit(profile RateLimitProfile, key KeyFunc) Middleware {
	rps, burst := profile.resolved()

	var (
		mu      sync.Mutex
		buckets = make(map[string]*limiterEntry)
		sweep   = time.Now()
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			now := time.Now()

			mu.Lock()
			if now.Sub(sweep) > time.Hour {
				for id, e := range buckets {
					if now.Sub(e.seen) > time.Hour {
						delete(buckets, id)
					}
				}
				sweep = now
			}
			entry, ok := buckets[k]
			if !ok {
				entry = &limiterEntry{lim: rate.NewLimiter(rate.Limit(rps), burst)}
				buckets[k] = entry
			}
			entry.seen = now
			allowed := entry.lim.Allow()
			mu.Unlock()

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(1/rps)+1))
				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":             "rate_limit_exceeded",
					"error_description": "too many requests, slow down",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
