package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/config"
	"github.com/delote/beauty-web/internal/handler"
	"github.com/delote/beauty-web/internal/router"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/internal/session"
	"github.com/delote/beauty-web/pkg/logger"
	"github.com/delote/beauty-web/pkg/metrics"
	"github.com/delote/beauty-web/web"
)

// Registered once; promauto panics on duplicate registration.
var testMetrics = metrics.NewMetrics("beauty_web_test")

const cookieName = "admin_token"

// fakeAPI answers every catalog endpoint with an empty ok envelope unless a
// specific route is installed.
type fakeAPI struct {
	mux *http.ServeMux
}

func newFakeAPI() *fakeAPI {
	f := &fakeAPI{mux: http.NewServeMux()}
	f.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []any{})
	})
	return f
}

func (f *fakeAPI) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mux.ServeHTTP(w, r)
}

func writeData(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": code, "message": message})
}

func newApp(t *testing.T, api *fakeAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{Port: 0},
		API:         config.APIConfig{BaseURL: srv.URL, PublicBaseURL: srv.URL, Timeout: 5 * time.Second},
		Cookie:      config.CookieConfig{Name: cookieName, MaxAge: 604800},
		Site:        config.SiteConfig{BaseURL: "https://delote-beauty.fr"},
	}

	log := logger.NewLogger(nil)
	store := cache.NewMemoryStore()
	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, store, nil, log)
	svc := service.NewRegistry(client)
	actions := action.New(client, cache.NewRevalidator(store, nil), log)

	render, err := handler.NewRenderer(web.Templates, cfg.API.PublicBaseURL)
	require.NoError(t, err)

	sess := session.NewStore(cfg.Cookie, false)
	h := handler.New(cfg, render, sess, svc, actions, log)
	return router.Setup(cfg, h, testMetrics)
}

func get(r *gin.Engine, path string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRendererParsesEveryTemplate(t *testing.T) {
	_, err := handler.NewRenderer(web.Templates, "https://api.example.com")
	require.NoError(t, err)
}

func TestHomeRendersFeaturedBlocks(t *testing.T) {
	api := newFakeAPI()
	api.handle("/services/featured", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]any{{"id": "s1", "title": "Soin visage éclat", "description": "Un soin complet"}})
	})
	api.handle("/products/featured", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]any{{"id": "p1", "title": "Crème mains", "slug": "creme-mains", "price": 19.9}})
	})
	r := newApp(t, api)

	w := get(r, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Soin visage éclat")
	assert.Contains(t, body, "Crème mains")
	assert.Contains(t, body, "19,90")
}

func TestHomeDegradesWhenBackendDown(t *testing.T) {
	api := newFakeAPI()
	api.handle("/services/featured", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "", "boom")
	})
	r := newApp(t, api)

	w := get(r, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aucun élément à afficher")
}

func TestProductDetailNotFound(t *testing.T) {
	api := newFakeAPI()
	api.handle("/products/rouge-mystere", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "product not found")
	})
	r := newApp(t, api)

	w := get(r, "/products/rouge-mystere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page non trouvée")
}

func TestProductDetailRenders(t *testing.T) {
	api := newFakeAPI()
	api.handle("/products/creme-mains", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{
			"id": "p1", "title": "Crème mains", "slug": "creme-mains",
			"price": 24.5, "code": "C-01", "brand": "Delote",
			"description": "Crème hydratante",
		})
	})
	r := newApp(t, api)

	w := get(r, "/products/creme-mains", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Crème mains")
	assert.Contains(t, body, "24,50")
	assert.Contains(t, body, "C-01")
}

func TestPricesPageGroupsByService(t *testing.T) {
	api := newFakeAPI()
	api.handle("/prices/grouped", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]any{
			{
				"service": map[string]any{"id": "s1", "title": "Coiffure"},
				"prices":  []map[string]any{{"id": "p1", "title": "Coupe femme", "price": 35.0}},
			},
		})
	})
	r := newApp(t, api)

	w := get(r, "/prices", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Coiffure")
	assert.Contains(t, body, "Coupe femme")
	assert.Contains(t, body, "35,00")
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := get(r, "/no-such-page", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page non trouvée")
}

func TestSitemapListsCatalog(t *testing.T) {
	api := newFakeAPI()
	api.handle("/products", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]any{{"id": "p1", "title": "Crème", "slug": "creme-mains"}})
	})
	r := newApp(t, api)

	w := get(r, "/sitemap.xml", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "https://delote-beauty.fr/services")
	assert.Contains(t, body, "https://delote-beauty.fr/products/creme-mains")
}

func TestRobotsBlocksBackOffice(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := get(r, "/robots.txt", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Disallow: /beauty-admin")
	assert.Contains(t, w.Body.String(), "https://delote-beauty.fr/sitemap.xml")
}

func TestHealth(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := get(r, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRedirectsAnonymous(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := get(r, "/beauty-admin/products-admin", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/beauty-admin/login?from=%2Fbeauty-admin%2Fproducts-admin", w.Header().Get("Location"))
}

func TestLoginSetsSessionCookie(t *testing.T) {
	api := newFakeAPI()
	api.handle("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{
			"token": "tok456",
			"user":  map[string]any{"id": "u1", "email": "admin@example.com", "role": "admin"},
		})
	})
	r := newApp(t, api)

	w := postForm(r, "/beauty-admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"secret"},
	}, "")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/beauty-admin", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, cookieName, c.Name)
	assert.Equal(t, "tok456", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 604800, c.MaxAge)
	assert.False(t, c.Secure)
}

func TestLoginHonorsFromTarget(t *testing.T) {
	api := newFakeAPI()
	api.handle("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{"token": "tok456", "user": map[string]any{"id": "u1"}})
	})
	r := newApp(t, api)

	w := postForm(r, "/beauty-admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"secret"},
		"from":     {"/beauty-admin/prices-admin"},
	}, "")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/beauty-admin/prices-admin", w.Header().Get("Location"))
}

func TestLoginRejectsExternalFromTarget(t *testing.T) {
	api := newFakeAPI()
	api.handle("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{"token": "tok456", "user": map[string]any{"id": "u1"}})
	})
	r := newApp(t, api)

	w := postForm(r, "/beauty-admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"secret"},
		"from":     {"https://evil.example.com/phish"},
	}, "")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/beauty-admin", w.Header().Get("Location"))
}

func TestLoginFailureShowsFrenchMessage(t *testing.T) {
	api := newFakeAPI()
	api.handle("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	})
	r := newApp(t, api)

	w := postForm(r, "/beauty-admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrongpass"},
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Email ou mot de passe incorrect")
	assert.Empty(t, w.Result().Cookies())
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := postForm(r, "/beauty-admin/logout", url.Values{}, "tok123")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/beauty-admin/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestDashboardShowsCounts(t *testing.T) {
	api := newFakeAPI()
	api.handle("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"ok": true, "data": []any{map[string]any{"id": "p1"}},
			"meta": map[string]any{"page": 1, "limit": 1, "total": 42, "pages": 42},
		})
	})
	r := newApp(t, api)

	w := get(r, "/beauty-admin", "tok123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "Tableau de bord")
}

func TestCategoryCreateRedirectsToList(t *testing.T) {
	api := newFakeAPI()
	api.handle("/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		writeData(w, map[string]any{"id": "c1"})
	})
	r := newApp(t, api)

	w := postForm(r, "/beauty-admin/categories-admin", url.Values{
		"title":   {"Soins du visage"},
		"section": {"service"},
	}, "tok123")

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/beauty-admin/categories-admin?saved="), loc)
}

func TestCategoryCreateValidationRerendersForm(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := postForm(r, "/beauty-admin/categories-admin", url.Values{
		"title":   {"X"},
		"section": {"service"},
	}, "tok123")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Le titre doit contenir au moins 2 caractères")
}

func TestAdminListShowsFlash(t *testing.T) {
	r := newApp(t, newFakeAPI())

	w := get(r, "/beauty-admin/categories-admin?saved="+url.QueryEscape("Catégorie créée avec succès"), "tok123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Catégorie créée avec succès")
}
