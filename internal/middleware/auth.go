package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/yusufkecer/health-tracker/internal/auth"
)

type contextKey string

const userKey contextKey = "auth_user"

type TokenParser interface {
	Parse(token string) (*auth.User, error)
}

// SessionToken prefers an Authorization bearer token and falls back to the
// session cookie.
func SessionToken(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if tok, ok := strings.CutPrefix(header, "Bearer "); ok {
			return tok
		}
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

func WithUser(ctx context.Context, u *auth.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (*auth.User, bool) {
	u, ok := ctx.Value(userKey).(*auth.User)
	return u, ok && u != nil
}

func AuthMiddleware(tokens TokenParser, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := SessionToken(r, cookieName)
			if tokenStr == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing or malformed credentials")
				return
			}

			user, err := tokens.Parse(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
