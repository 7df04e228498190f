package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/scamtrace/scamtrace/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Middleware implements per-IP rate limiting for REST endpoints.
type Middleware struct {
	limiters     map[string]*rate.Limiter
	limiterMutex sync.RWMutex
	config       *config.RateLimit
	logger       *zap.Logger
}

// New creates a new rate limiting middleware.
func New(config *config.RateLimit, logger *zap.Logger) *Middleware {
	return &Middleware{
		limiters: make(map[string]*rate.Limiter),
		config:   config,
		logger:   logger.Named("ratelimit"),
	}
}

// AsRESTMiddleware wraps a bunrouter handler with rate limiting.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		clientIP := clientIP(req.Request)

		limiter := m.getLimiter(clientIP)
		if !limiter.Allow() {
			m.logger.Debug("Rate limit exceeded", zap.String("ip", clientIP))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)

			return nil
		}

		return next(w, req)
	}
}

// getLimiter retrieves or creates a rate limiter for the given IP.
func (m *Middleware) getLimiter(ip string) *rate.Limiter {
	m.limiterMutex.RLock()
	limiter, exists := m.limiters[ip]
	m.limiterMutex.RUnlock()

	if !exists {
		m.limiterMutex.Lock()

		limiter, exists = m.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Limit(m.config.RequestsPerSecond), m.config.BurstSize)
			m.limiters[ip] = limiter
		}

		m.limiterMutex.Unlock()
	}

	return limiter
}

// clientIP extracts the client address, trusting the first forwarded hop
// when the request came through a proxy.
func clientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}

		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}

	return host
}
