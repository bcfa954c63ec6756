package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/forumgate-dev/forumgate/internal/middleware/ratelimiter"
	"github.com/forumgate-dev/forumgate/internal/utils"
)

// RateLimit limits requests per identity, where getIdentity extracts the
// identity from the request (typically the client IP).
func RateLimit(rl *ratelimiter.IdentityRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr. X-Real-IP and X-Forwarded-For
// are not trusted (no reverse proxy in front).
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
