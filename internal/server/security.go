package server

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GrapeChallenge_Web/internal/metrics"
)

// Per-client request budget
const (
	rateWindow     = 5 * time.Minute
	rateLimit      = 1000
	rateLogEveryN  = 100
	rateMaxClients = 10000
)

// limitBody caps the size of request bodies
func limitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientWindow is one client's request count in the current window.
// The LRU entry expires with the window, so counts are never reset in place.
type clientWindow struct {
	count   int
	started time.Time
}

// RateLimiter allows each client a fixed number of requests per window
type RateLimiter struct {
	window  time.Duration
	limit   int
	proxies []netip.Prefix

	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
}

// NewRateLimiter creates a limiter. Requests whose peer is one of
// trustedProxies are attributed to the last X-Forwarded-For hop.
func NewRateLimiter(window time.Duration, limit int, trustedProxies []string) *RateLimiter {
	return &RateLimiter{
		window:  window,
		limit:   limit,
		proxies: parseProxies(trustedProxies),
		clients: expirable.NewLRU[string, *clientWindow](rateMaxClients, nil, window),
	}
}

// parseProxies accepts single addresses and CIDR ranges, skipping invalid entries
func parseProxies(entries []string) []netip.Prefix {
	var out []netip.Prefix
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			slog.Warn(LogMsgInvalidProxy, "proxy", entry)
			continue
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out
}

// Allow records a request from client and reports whether it is within budget,
// along with the time left until the client's window closes
func (l *RateLimiter) Allow(client string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cw, ok := l.clients.Get(client)
	if !ok {
		cw = &clientWindow{started: now}
		l.clients.Add(client, cw)
	}
	cw.count++

	if cw.count <= l.limit {
		return true, 0
	}
	if cw.count%rateLogEveryN == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", client, "count", cw.count, "window", l.window)
	}
	return false, l.window - now.Sub(cw.started)
}

// Middleware rejects clients over budget with 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retry := l.Allow(l.clientIP(r))
		if !ok {
			metrics.RecordRateLimited()
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(retry.Round(time.Second).Seconds())))
			http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the peer address, or the last X-Forwarded-For hop when
// the peer is a trusted proxy
func (l *RateLimiter) clientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !l.trusted(remote) {
		return remote
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func (l *RateLimiter) trusted(remote string) bool {
	addr, err := netip.ParseAddr(remote)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.proxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// securityHeaders sets the browser hardening headers on every response
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(HeaderContentType, HeaderValueNoSniff)
		h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
		h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
		h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
		next.ServeHTTP(w, r)
	})
}
