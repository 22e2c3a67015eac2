package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginLimiter throttles credential submissions per client IP. The public
// catalog is unthrottled; only the login form is a brute-force target.
type LoginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	stop     chan struct{}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLoginLimiter(limit rate.Limit, burst int) *LoginLimiter {
	l := &LoginLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *LoginLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep(30 * time.Minute)
		case <-l.stop:
			return
		}
	}
}

// sweep drops visitors idle for longer than maxAge.
func (l *LoginLimiter) sweep(maxAge time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.visitors {
		if time.Since(v.lastSeen) > maxAge {
			delete(l.visitors, ip)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *LoginLimiter) Stop() {
	close(l.stop)
}

func (l *LoginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *LoginLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.String(http.StatusTooManyRequests, "Trop de tentatives. Réessayez plus tard.")
			c.Abort()
			return
		}
		c.Next()
	}
}
