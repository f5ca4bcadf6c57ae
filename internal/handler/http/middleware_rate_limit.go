package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// visitorIdleTTL is how long an address may stay silent before its
	// bucket is dropped.
	visitorIdleTTL = 10 * time.Minute

	// defaultMaxVisitors bounds the number of tracked addresses.
	defaultMaxVisitors = 10000

	// capacityRetryAfter is sent to a new address while the table is full.
	capacityRetryAfter = time.Second
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client address, for at most
// maxVisitors addresses at a time.
type ipRateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	maxVisitors int
	limit       rate.Limit
	burst       int
	lastSweep   time.Time

	now func() time.Time
}

// newIPRateLimiter returns nil when perSecond is not positive, which
// disables limiting.
func newIPRateLimiter(perSecond float64, burst int) *ipRateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}

	return &ipRateLimiter{
		visitors:    make(map[string]*visitor),
		maxVisitors: defaultMaxVisitors,
		limit:       rate.Limit(perSecond),
		burst:       burst,
		now:         time.Now,
	}
}

// allow spends one token of ip's bucket. When the bucket is empty it
// reports how long the client should wait. A new address is refused while
// the table is full of addresses that are still being limited.
func (l *ipRateLimiter) allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= l.maxVisitors {
			l.gc(now)
		}
		if len(l.visitors) >= l.maxVisitors {
			return false, capacityRetryAfter
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	reservation := v.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}

	reservation.CancelAt(now)
	return false, delay
}

func (l *ipRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < visitorIdleTTL {
		return
	}
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= visitorIdleTTL {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

// gc drops idle visitors and visitors whose bucket has refilled completely;
// a fresh bucket behaves the same as a full one.
func (l *ipRateLimiter) gc(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= visitorIdleTTL || v.limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.visitors, ip)
		}
	}
}

// limitSignIn throttles sign-in attempts per client address and answers 429
// with a Retry-After header once the bucket is empty.
func (h *Handler) limitSignIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.signInLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ok, retryAfter := h.signInLimiter.allow(clientIP(r))
		if !ok {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
			writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which middleware.RealIP may
// already have replaced with a forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
