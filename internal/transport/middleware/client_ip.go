package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/studio-backend/pkg/ctxutil"
)

// ClientIP stores the caller address: the first X-Forwarded-For entry, or the
// host part of RemoteAddr. The value is client-supplied and only labels the
// actor of anonymous changes; rate limiting keys on remoteHost.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxutil.WithClientIP(r.Context(), clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return remoteHost(r)
}

// remoteHost is the host part of the peer address of the connection.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
