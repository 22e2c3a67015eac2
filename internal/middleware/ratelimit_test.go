package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLoginLimiterBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Refill is effectively zero within the test window.
	limiter := NewLoginLimiter(rate.Every(time.Hour), 3)
	defer limiter.Stop()

	r := gin.New()
	r.POST("/login", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit())
	}
	assert.Equal(t, http.StatusTooManyRequests, hit())
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewLoginLimiter(rate.Every(time.Hour), 1)
	defer limiter.Stop()

	r := gin.New()
	r.POST("/login", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("192.0.2.10:1234"))
	assert.Equal(t, http.StatusTooManyRequests, hit("192.0.2.10:1234"))
	// A different client keeps its own limiter.
	assert.Equal(t, http.StatusOK, hit("192.0.2.20:1234"))
}

func TestLoginLimiterSweepDropsIdleVisitors(t *testing.T) {
	limiter := NewLoginLimiter(rate.Every(time.Hour), 1)
	defer limiter.Stop()

	limiter.allow("192.0.2.10")
	limiter.allow("192.0.2.20")

	limiter.mu.Lock()
	limiter.visitors["192.0.2.10"].lastSeen = time.Now().Add(-time.Hour)
	limiter.mu.Unlock()

	limiter.sweep(30 * time.Minute)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.visitors, "192.0.2.10")
	assert.Contains(t, limiter.visitors, "192.0.2.20")
}

func TestLoginLimiterStopEndsCleanup(t *testing.T) {
	limiter := NewLoginLimiter(rate.Every(time.Hour), 1)
	limiter.Stop()

	select {
	case <-limiter.stop:
	case <-time.After(time.Second):
		t.Fatal("stop channel not closed")
	}
	// The limiter itself keeps working after the cleanup loop exits.
	assert.True(t, limiter.allow("192.0.2.30"))
}
