package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// ErrorTypeRateLimited is the problem type of 429 responses
const ErrorTypeRateLimited = "rate_limited"

// RateLimiter enforces three budgets: per client IP before authentication,
// per party after authentication, and a tighter per-party budget for
// negotiation writes (bid submissions and bid actions).
type RateLimiter struct {
	cfg            *config.RateLimitConfig
	logger         *zap.Logger
	byIP           func(http.Handler) http.Handler
	byParty        func(http.Handler) http.Handler
	byPartyActions func(http.Handler) http.Handler
	whitelistIPs   map[string]bool
	exactPaths     map[string]bool
	pathPrefixes   []string
}

// NewRateLimiter creates a new rate limiter with the given configuration.
// Whitelisted paths ending in /* match every path below the prefix.
func NewRateLimiter(cfg *config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		cfg:          cfg,
		logger:       logger,
		whitelistIPs: make(map[string]bool, len(cfg.WhitelistIPs)),
		exactPaths:   make(map[string]bool, len(cfg.WhitelistPaths)),
	}
	for _, ip := range cfg.WhitelistIPs {
		rl.whitelistIPs[ip] = true
	}
	for _, path := range cfg.WhitelistPaths {
		if prefix, ok := strings.CutSuffix(path, "/*"); ok {
			rl.pathPrefixes = append(rl.pathPrefixes, prefix)
			continue
		}
		rl.exactPaths[path] = true
	}

	rl.byIP = rl.limiter(cfg.RequestsPerMinute, httprate.KeyByIP)
	rl.byParty = rl.limiter(cfg.RequestsPerMinuteAuth, keyByPartyOrIP("party"))
	rl.byPartyActions = rl.limiter(cfg.RequestsPerMinuteActions, keyByPartyOrIP("actions"))

	logger.Info("Rate limiter initialized",
		zap.Bool("enabled", cfg.Enabled),
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("requests_per_minute_auth", cfg.RequestsPerMinuteAuth),
		zap.Int("requests_per_minute_actions", cfg.RequestsPerMinuteActions),
		zap.Strings("whitelist_ips", cfg.WhitelistIPs),
		zap.Strings("whitelist_paths", cfg.WhitelistPaths),
	)

	return rl
}

// limiter builds an httprate budget; a non-positive budget is unlimited
func (rl *RateLimiter) limiter(perMinute int, key httprate.KeyFunc) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(rl.rateLimitExceededHandler),
	)
}

// LimitByIP applies the per-IP budget; it runs before authentication
func (rl *RateLimiter) LimitByIP(next http.Handler) http.Handler {
	return rl.wrap(rl.byIP, next)
}

// Limit applies the per-party budget to authenticated requests and falls
// back to the per-IP budget otherwise
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	party := rl.byParty(next)
	ip := rl.byIP(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case rl.exempt(r):
			next.ServeHTTP(w, r)
		case hasParty(r):
			party.ServeHTTP(w, r)
		default:
			ip.ServeHTTP(w, r)
		}
	})
}

// LimitActions applies the negotiation write budget
func (rl *RateLimiter) LimitActions(next http.Handler) http.Handler {
	return rl.wrap(rl.byPartyActions, next)
}

func (rl *RateLimiter) wrap(limit func(http.Handler) http.Handler, next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	limited := limit(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.exempt(r) {
			next.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

// exempt reports whether the request path or client IP is whitelisted
func (rl *RateLimiter) exempt(r *http.Request) bool {
	if rl.exactPaths[r.URL.Path] {
		return true
	}
	for _, prefix := range rl.pathPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return rl.whitelistIPs[clientIP(r)]
}

func hasParty(r *http.Request) bool {
	_, ok := auth.FromContext(r.Context())
	return ok
}

// keyByPartyOrIP keys authenticated requests by party and the rest by IP,
// within the given budget namespace
func keyByPartyOrIP(namespace string) httprate.KeyFunc {
	return func(r *http.Request) (string, error) {
		if party, ok := auth.FromContext(r.Context()); ok {
			return namespace + ":party:" + party.PartyID, nil
		}
		return namespace + ":ip:" + clientIP(r), nil
	}
}

// clientIP is the host part of RemoteAddr, which chi's RealIP middleware
// has already rewritten from X-Forwarded-For / X-Real-IP
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiter) rateLimitExceededHandler(w http.ResponseWriter, r *http.Request) {
	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("client_ip", clientIP(r)),
	}
	if party, ok := auth.FromContext(r.Context()); ok {
		fields = append(fields, zap.String("party_id", party.PartyID))
	}
	rl.logger.Warn("rate limit exceeded", fields...)

	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("Retry-After", "60")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   ErrorTypeRateLimited,
		Title:  http.StatusText(http.StatusTooManyRequests),
		Status: http.StatusTooManyRequests,
		Detail: "Too many requests. Please try again later.",
	})
}
