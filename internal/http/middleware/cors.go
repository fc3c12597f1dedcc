package middleware

import (
	"net/http"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// partyHeaders must pass preflight for back-office callers to act on behalf of a party
var partyHeaders = []string{auth.HeaderAPIKey, auth.HeaderPartyID, auth.HeaderPartyRole}

// CORS returns a CORS middleware configured from the application config.
// Without configured origins, development allows every origin and other
// environments deny all cross-origin requests.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   withHeaders(cfg.AllowedHeaders, partyHeaders...),
		ExposedHeaders:   withHeaders(cfg.ExposedHeaders, "Location", "X-Request-ID"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	development := environment == "development" || environment == "local" || environment == ""

	switch {
	case containsString(cfg.AllowedOrigins, "*"):
		if !development {
			logger.Warn("CORS configured with wildcard origin in non-development environment",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = anyOrigin
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins", zap.Strings("origins", cfg.AllowedOrigins))
	case development:
		options.AllowOriginFunc = anyOrigin
		logger.Info("CORS configured to allow all origins in development mode")
	default:
		// An empty AllowedOrigins means "*" to go-chi/cors
		options.AllowOriginFunc = func(*http.Request, string) bool { return false }
		logger.Warn("CORS configured with no allowed origins - all cross-origin requests will be denied",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}

func anyOrigin(_ *http.Request, origin string) bool {
	return origin != ""
}

// withHeaders appends the required headers that are not already listed
func withHeaders(configured []string, required ...string) []string {
	out := append([]string(nil), configured...)
	for _, h := range required {
		if !containsString(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
