package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"pandamarket/internal/handler/http/respond"

	"golang.org/x/time/rate"
)

// RateLimiter applies per-client-IP token bucket rate limiting.
type RateLimiter struct {
	mu           sync.Mutex
	visitors     map[string]*visitor
	limit        rate.Limit
	burst        int
	idleEviction time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiting middleware allowing
// requestsPerSecond sustained with the given burst per client IP.
// Clients idle longer than idleEviction are evicted in the background.
func NewRateLimiter(requestsPerSecond float64, burst int, idleEviction time.Duration) *RateLimiter {
	if idleEviction <= 0 {
		idleEviction = 30 * time.Minute
	}
	rl := &RateLimiter{
		visitors:     make(map[string]*visitor),
		limit:        rate.Limit(requestsPerSecond),
		burst:        burst,
		idleEviction: idleEviction,
	}
	go rl.cleanupLoop()
	return rl
}

// Limit rejects requests over the client's allowance with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(extractIP(r)) {
			respond.JSON(w, http.StatusTooManyRequests, respond.ErrorBody{
				Message:    "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
				StatusCode: http.StatusTooManyRequests,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.idleEviction)
	defer ticker.Stop()
	for range ticker.C {
		rl.evictIdle(time.Now().Add(-rl.idleEviction))
	}
}

// evictIdle drops visitors not seen since the cutoff.
func (rl *RateLimiter) evictIdle(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// extractIP extracts the client IP from the request, preferring
// X-Forwarded-For and X-Real-IP over RemoteAddr.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := parseFirstIP(xff); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseFirstIP parses the first IP address from a comma-separated list.
func parseFirstIP(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			if ip := net.ParseIP(s[:i]); ip != nil {
				return ip.String()
			}
			return ""
		}
	}
	if ip := net.ParseIP(s); ip != nil {
		return ip.String()
	}
	return ""
}
