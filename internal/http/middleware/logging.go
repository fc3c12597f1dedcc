package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agrimarket/negotiation-api/internal/auth"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging writes one access log line per request. The party is resolved
// further down the chain, so a holder is planted in the context for the auth
// middleware to fill in.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chimw.GetReqID(r.Context())
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			holder := &auth.PartyHolder{}
			next.ServeHTTP(ww, r.WithContext(auth.WithPartyHolder(r.Context(), holder)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			fields := append(make([]zap.Field, 0, 10),
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status_code", status),
				zap.Int("response_size", ww.BytesWritten()),
				zap.Duration("duration", elapsed),
			)
			if party := holder.Party(); party != nil {
				fields = append(fields,
					zap.String("party_id", party.PartyID),
					zap.String("party_role", string(party.Role)),
					zap.String("auth_method", string(party.Method)),
				)
			}

			msg := fmt.Sprintf("%s %s %d", r.Method, r.URL.Path, status)
			if ce := logger.Check(levelFor(status), msg); ce != nil {
				ce.Write(fields...)
			}
		})
	}
}

func levelFor(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
