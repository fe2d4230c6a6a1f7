package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

type keyFunc = func(r *http.Request) string

// RateLimit allows 5 req/s with a burst of 10 per key; adjust as needed.
func RateLimit(next http.Handler, kf keyFunc) http.Handler {
	limiter := struct {
		mu sync.Mutex
		m  map[string]*rate.Limiter
	}{m: map[string]*rate.Limiter{}}

	get := func(k string) *rate.Limiter {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		if l, ok := limiter.m[k]; ok {
			return l
		}
		l := rate.NewLimiter(5, 10)
		limiter.m[k] = l
		return l
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		k := kf(r)
		if k == "" {
			host, _, _ := net.SplitHostPort(r.RemoteAddr)
			k = host
		}
		if !get(k).Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RemoteKey buckets by client host.
func RemoteKey(r *http.Request) string {
	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
