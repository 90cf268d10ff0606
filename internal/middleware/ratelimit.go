package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// sweepThreshold is the bucket count above which expired buckets are purged.
const sweepThreshold = 4096

type window struct {
	used  int
	reset time.Time
}

type limiter struct {
	mu      sync.Mutex
	limit   int
	per     time.Duration
	now     func() time.Time
	windows map[string]*window
}

// take spends one request for key and reports what is left. When ok is
// false retry says how long until the window resets.
func (l *limiter) take(key string) (remaining int, retry time.Duration, ok bool) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.windows[key]
	if w == nil || !now.Before(w.reset) {
		w = &window{reset: now.Add(l.per)}
		l.windows[key] = w
	}
	if w.used >= l.limit {
		return 0, w.reset.Sub(now), false
	}
	w.used++
	if len(l.windows) > sweepThreshold {
		for k, old := range l.windows {
			if !now.Before(old.reset) {
				delete(l.windows, k)
			}
		}
	}
	return l.limit - w.used, 0, true
}

// RateLimit allows limit requests per client address in each fixed window
// of length per. It expects RemoteAddr to already carry the client address
// (chi's RealIP runs first). Rejections answer 429 with Retry-After.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	l := &limiter{limit: limit, per: per, now: time.Now, windows: make(map[string]*window)}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, retry, ok := l.take(clientAddr(r))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				secs := int(retry / time.Second)
				if retry%time.Second != 0 || secs == 0 {
					secs++
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests","suggestion":"retry after the Retry-After interval"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
