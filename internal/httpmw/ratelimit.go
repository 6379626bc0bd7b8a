package httpmw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long a client bucket survives without requests.
const idleAfter = 10 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// ClientLimiter keeps one token bucket per client IP.
type ClientLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*bucket
	swept   time.Time
	now     func() time.Time
}

func NewClientLimiter(limit rate.Limit, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{limit: limit, burst: burst, clients: map[string]*bucket{}, now: time.Now}
}

// Allow spends one token from the client's bucket.
func (c *ClientLimiter) Allow(client string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.swept) > idleAfter {
		for k, b := range c.clients {
			if now.Sub(b.seen) > idleAfter {
				delete(c.clients, k)
			}
		}
		c.swept = now
	}
	b, ok := c.clients[client]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(c.limit, c.burst)}
		c.clients[client] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Clients is the number of tracked buckets.
func (c *ClientLimiter) Clients() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

func (c *ClientLimiter) retryAfter() string {
	if c.limit <= 0 || c.limit == rate.Inf {
		return "1"
	}
	return strconv.Itoa(int(math.Max(1, math.Ceil(1/float64(c.limit)))))
}

// WithRateLimit answers 429 once a client exhausts its bucket. Health probes
// are never limited. A nil limiter disables limiting.
func WithRateLimit(l *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !probe(r) && !l.Allow(ClientIP(r)) {
				w.Header().Set("Retry-After", l.retryAfter())
				writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
