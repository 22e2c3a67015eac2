package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testCookie = "admin_token"

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Guard(testCookie))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "public") })
	r.GET(AdminPrefix, func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	r.GET(LoginPath, func(c *gin.Context) { c.String(http.StatusOK, "login") })
	r.GET(AdminPrefix+"/products-admin", func(c *gin.Context) { c.String(http.StatusOK, "products") })
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardIgnoresPublicPaths(t *testing.T) {
	r := guardedRouter()

	w := doGet(r, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public", w.Body.String())
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	r := guardedRouter()

	w := doGet(r, AdminPrefix+"/products-admin", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath+"?from=%2Fbeauty-admin%2Fproducts-admin", w.Header().Get("Location"))
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	r := guardedRouter()

	w := doGet(r, AdminPrefix+"/products-admin", "tok123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "products", w.Body.String())
}

func TestGuardBouncesAuthenticatedFromLogin(t *testing.T) {
	r := guardedRouter()

	w := doGet(r, LoginPath, "tok123")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, AdminPrefix, w.Header().Get("Location"))
}

func TestGuardAllowsAnonymousLoginPage(t *testing.T) {
	r := guardedRouter()

	w := doGet(r, LoginPath, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", w.Body.String())
}
