package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов"

// IPRateLimiter хранит token bucket на каждый IP.
// Лимитеры неактивных IP вытесняются из кэша по TTL.
type IPRateLimiter struct {
	limiters *cache.Cache
	r        rate.Limit
	b        int
	ttl      time.Duration
	trusted  []netip.Prefix
}

// NewIPRateLimiter создает лимитер: rps запросов в секунду, burst - размер пачки.
// X-Forwarded-For учитывается, только если запрос пришёл с адреса из trustedProxies.
func NewIPRateLimiter(rps float64, burst int, ttl time.Duration, trustedProxies []netip.Prefix) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: cache.New(ttl, 2*ttl),
		r:        rate.Limit(rps),
		b:        burst,
		ttl:      ttl,
		trusted:  trustedProxies,
	}
}

// GetLimiter возвращает лимитер IP, продлевая его жизнь в кэше
func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if v, ok := l.limiters.Get(ip); ok {
		limiter := v.(*rate.Limiter)
		l.limiters.Set(ip, limiter, l.ttl)
		return limiter
	}

	limiter := rate.NewLimiter(l.r, l.b)
	// Add не перезапишет лимитер, созданный параллельным запросом
	if err := l.limiters.Add(ip, limiter, l.ttl); err != nil {
		if v, ok := l.limiters.Get(ip); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Middleware отклоняет запросы сверх лимита с 429
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.GetLimiter(l.clientIP(r)).Allow() {
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP берёт адрес соединения. Если соединение пришло от доверенного прокси,
// идёт по X-Forwarded-For справа налево и возвращает первый недоверенный адрес.
func (l *IPRateLimiter) clientIP(r *http.Request) string {
	remote := remoteHost(r)
	if !l.isTrusted(remote) {
		return remote
	}

	fwd := r.Header.Values("X-Forwarded-For")
	if len(fwd) == 0 {
		return remote
	}
	hops := strings.Split(strings.Join(fwd, ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if _, err := netip.ParseAddr(hop); err != nil {
			// мусор в заголовке: дальше цепочке верить нельзя
			return remote
		}
		if !l.isTrusted(hop) {
			return hop
		}
		remote = hop
	}
	return remote
}

func (l *IPRateLimiter) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
