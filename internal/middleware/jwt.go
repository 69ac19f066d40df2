package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type contextKey string

const SessionKey contextKey = "session"

// TokenParser turns a bearer token into a session.
type TokenParser interface {
	Parse(token string) (auth.Session, error)
}

func JWTMiddleware(parser TokenParser, revoker auth.Revoker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}

			session, err := parser.Parse(parts[1])
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			revoked, err := revoker.IsRevoked(r.Context(), session.TokenID)
			if err != nil {
				logger.Log.Error("failed to check token revocation", zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if revoked {
				http.Error(w, "token has been revoked", http.StatusUnauthorized)
				return
			}

			ctx := WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets through only sessions with the given role.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSession(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if session.Role != role {
				http.Error(w, "action not permitted for this role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithSession(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

func GetSession(ctx context.Context) (auth.Session, bool) {
	s, ok := ctx.Value(SessionKey).(auth.Session)
	return s, ok
}
