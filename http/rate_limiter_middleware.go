package http

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	logger *slog.Logger,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			wait := limiter.RetryAfter(ip)
			logger.Info("rate limit exceeded", "client", ip, "path", r.URL.Path, "retry_after", wait)
			// Retry-After va en segundos enteros
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the mortgage endpoints behind the rate limiter.
func NewRouter(handler *MortgageHandler, limiter *RateLimiter, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(
		"/mortgage/calculate",
		RateLimitMiddleware(limiter, logger, http.HandlerFunc(handler.Calculate)),
	)
	mux.Handle(
		"/mortgage/history",
		RateLimitMiddleware(limiter, logger, http.HandlerFunc(handler.History)),
	)
	return mux
}
