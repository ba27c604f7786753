package httpx

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client address.
type RateLimiter struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	idle     time.Duration
	trusted  []netip.Prefix
}

// NewRateLimiter builds a limiter keyed by peer address. X-Forwarded-For is
// only honoured when the peer matches one of trustedProxies, given as
// addresses or CIDR ranges. Unparseable entries are ignored.
func NewRateLimiter(rps float64, burst int, trustedProxies ...string) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		idle:     5 * time.Minute,
	}
	for _, p := range trustedProxies {
		if prefix, err := netip.ParsePrefix(p); err == nil {
			rl.trusted = append(rl.trusted, prefix.Masked())
		} else if addr, err := netip.ParseAddr(p); err == nil {
			rl.trusted = append(rl.trusted, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return rl
}

// Run evicts idle clients until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) > rl.idle {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !rl.isTrusted(host) {
		return host
	}
	forwarded := r.Header.Get("X-Forwarded-For")
	if first, _, _ := strings.Cut(forwarded, ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	return host
}

func (rl *RateLimiter) isTrusted(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range rl.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiterFor(rl.clientKey(r)).Allow() {
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
