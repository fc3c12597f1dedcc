package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/logger"
	"go.uber.org/zap"
)

// Header names used by trusted back-office callers
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderPartyID   = "X-Party-ID"
	HeaderPartyRole = "X-Party-Role"
)

// Middleware resolves the calling party for HTTP requests
type Middleware struct {
	validator *TokenValidator
	apiKey    string
	logger    *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(cfg *config.AuthConfig, logger *zap.Logger) *Middleware {
	return &Middleware{
		validator: NewTokenValidator(cfg.JWTSecret, cfg.Issuer),
		apiKey:    cfg.APIKey,
		logger:    logger,
	}
}

// Authenticate requires either a valid API key with party headers or a Bearer token
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if apiKey := r.Header.Get(HeaderAPIKey); apiKey != "" {
			if !m.validateAPIKey(apiKey) {
				m.logger.Warn("invalid API key attempt",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			party, ok := partyFromHeaders(r)
			if !ok {
				http.Error(w, "Unauthorized: X-Party-ID and X-Party-Role are required with an API key", http.StatusUnauthorized)
				return
			}
			m.logAuthenticated(r, party, start)
			next.ServeHTTP(w, r.WithContext(WithPartyContext(r.Context(), party)))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized: missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "Unauthorized: invalid authorization header format", http.StatusUnauthorized)
			return
		}

		party, err := m.validator.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}

		m.logAuthenticated(r, party, start)
		next.ServeHTTP(w, r.WithContext(WithPartyContext(r.Context(), party)))
	})
}

func (m *Middleware) validateAPIKey(key string) bool {
	if m.apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) == 1
}

func (m *Middleware) logAuthenticated(r *http.Request, party *PartyContext, start time.Time) {
	logger.WithParty(m.logger, party.PartyID, string(party.Role)).Debug("request authenticated",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("auth_type", string(party.Method)),
		zap.Duration("auth_duration", time.Since(start)),
	)
}

func partyFromHeaders(r *http.Request) (*PartyContext, bool) {
	id := strings.TrimSpace(r.Header.Get(HeaderPartyID))
	role := domain.PartyRole(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderPartyRole))))
	if id == "" || !role.IsValid() {
		return nil, false
	}
	return &PartyContext{PartyID: id, Role: role, DisplayName: id, Method: MethodAPIKey}, true
}
