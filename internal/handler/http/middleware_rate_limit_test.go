package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newLimiterWithClock(perSecond float64, burst int) (*ipRateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newIPRateLimiter(perSecond, burst)
	l.now = clock.now
	return l, clock
}

func TestNewIPRateLimiter_DisabledForNonPositiveRate(t *testing.T) {
	assert.Nil(t, newIPRateLimiter(0, 5))
	assert.Nil(t, newIPRateLimiter(-1, 5))
}

func TestIPRateLimiter_BurstThenRefill(t *testing.T) {
	l, clock := newLimiterWithClock(1, 2)

	ok, _ := l.allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.allow("10.0.0.1")
	assert.True(t, ok)

	ok, wait := l.allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Second, wait)

	clock.advance(time.Second)
	ok, _ = l.allow("10.0.0.1")
	assert.True(t, ok)
}

func TestIPRateLimiter_AddressesAreIndependent(t *testing.T) {
	l, _ := newLimiterWithClock(1, 1)

	ok, _ := l.allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = l.allow("10.0.0.1")
	require.False(t, ok)

	ok, _ = l.allow("10.0.0.2")
	assert.True(t, ok)
}

func TestIPRateLimiter_SweepsIdleVisitors(t *testing.T) {
	l, clock := newLimiterWithClock(1, 1)

	l.allow("10.0.0.1")
	clock.advance(visitorIdleTTL)
	l.allow("10.0.0.2")

	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestIPRateLimiter_BoundedVisitorTable(t *testing.T) {
	l, clock := newLimiterWithClock(1, 1)
	l.maxVisitors = 2

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		ok, _ := l.allow(ip)
		require.True(t, ok)
	}

	ok, wait := l.allow("10.0.0.3")
	assert.False(t, ok, "new address must be refused while every bucket is in use")
	assert.Equal(t, capacityRetryAfter, wait)
	assert.Len(t, l.visitors, 2)

	clock.advance(time.Second)
	ok, _ = l.allow("10.0.0.3")
	assert.True(t, ok, "refilled buckets are reclaimed")
	assert.LessOrEqual(t, len(l.visitors), 2)
}

func TestIPRateLimiter_GCKeepsLimitedVisitors(t *testing.T) {
	l, clock := newLimiterWithClock(1, 1)

	l.allow("10.0.0.1")
	clock.advance(500 * time.Millisecond)
	l.gc(clock.now())

	assert.Contains(t, l.visitors, "10.0.0.1")
	ok, _ := l.allow("10.0.0.1")
	assert.False(t, ok)
}

func TestLimitSignIn_Returns429WithRetryAfter(t *testing.T) {
	h := NewHandler(&service.Services{}, validators.NewRequestValidator(),
		config.Server{SignInRate: 0.5, SignInBurst: 1}, logger.Nop())
	l, _ := newLimiterWithClock(0.5, 1)
	h.signInLimiter = l

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	send := func() *httptest.ResponseRecorder {
		req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/user/signin", nil))
		req.RemoteAddr = "192.0.2.1:5555"
		rr := httptest.NewRecorder()
		h.limitSignIn(next).ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send().Code)

	rr := send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"too many requests"}`, rr.Body.String())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.RemoteAddr = "192.0.2.1"
	assert.Equal(t, "192.0.2.1", clientIP(req))
}
