package server

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracy/internal/shared"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the id the logging middleware assigns to each request.
const RequestIDHeader = "X-Request-Id"

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging logs every request with its method, path, status, duration and a generated request id.
func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := shared.GenerateID()
			w.Header().Set(RequestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// Serialize services requests one at a time.
//
// The token file is only touched from inside this critical section.
func Serialize() Middleware {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects requests with 429 once limiter runs out of tokens. A nil limiter disables it.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter builds the limiter for [RateLimit]; perSecond <= 0 returns nil.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Stats counts serviced requests.
type Stats struct {
	requests atomic.Int64
	failures atomic.Int64
}

// Requests returns the number of requests serviced so far.
func (s *Stats) Requests() int64 { return s.requests.Load() }

// Failures returns the number of requests answered with a 4xx or 5xx status.
func (s *Stats) Failures() int64 { return s.failures.Load() }

// Count records every request in stats.
func Count(stats *Stats) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			stats.requests.Add(1)
			if rec.status >= http.StatusBadRequest {
				stats.failures.Add(1)
			}
		})
	}
}
