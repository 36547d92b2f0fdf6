package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/studio-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (ctxutil.Identity, error)
}

// Auth attaches the identity of a valid bearer token to the request. Requests
// without a token pass through anonymously; a bad token is rejected.
func Auth(validator tokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "身份认证信息无效")
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity rejects anonymous requests with 401.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "身份认证信息未提供")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
