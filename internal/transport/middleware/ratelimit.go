package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/callhistory-backend/pkg/ctxutil"
)

// idleTTL is how long an unused limiter is kept before cleanup drops it.
const idleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per operator (or client IP for
// unauthenticated requests). It guards the expensive endpoints: the manual
// sync, which fans out to the remote API, and the upload preview.
type RateLimiter struct {
	limiters sync.Map // map[string]*entry
	stop     chan struct{}
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that allows maxPerMinute requests per key with a
// burst of the same size.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	retryAfter := strconv.Itoa(int((time.Minute / time.Duration(maxPerMinute)).Seconds()) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e := rl.get(clientKey(r), every, maxPerMinute)
			if !e.limiter.AllowN(rl.now(), 1) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) get(key string, every rate.Limit, burst int) *entry {
	val, _ := rl.limiters.LoadOrStore(key, &entry{limiter: rate.NewLimiter(every, burst)})
	e := val.(*entry)
	e.mu.Lock()
	e.lastSeen = rl.now()
	e.mu.Unlock()
	return e
}

// clientKey prefers the authenticated operator and falls back to the
// remote host without its port.
func clientKey(r *http.Request) string {
	if op, ok := ctxutil.OperatorFromCtx(r.Context()); ok {
		return "op:" + op
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.limiters.Range(func(key, value any) bool {
		e := value.(*entry)
		e.mu.Lock()
		idle := now.Sub(e.lastSeen)
		e.mu.Unlock()
		if idle > idleTTL {
			rl.limiters.Delete(key)
		}
		return true
	})
}
