// Package router wires the middleware chain and every route of the site.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/delote/beauty-web/internal/config"
	"github.com/delote/beauty-web/internal/handler"
	"github.com/delote/beauty-web/internal/middleware"
	"github.com/delote/beauty-web/pkg/metrics"
	"github.com/delote/beauty-web/web"
)

// Login attempts allowed per client IP: a burst of 5, refilling one every
// 10 seconds.
const (
	rateWindow = 10 * time.Second
	loginBurst = 5
)

// Setup builds the gin engine. The route guard runs for every request so
// back-office paths are never reachable without the session cookie.
func Setup(cfg *config.Config, h *handler.Handler, m *metrics.Metrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(m),
		middleware.Guard(cfg.Cookie.Name),
	)

	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/sitemap.xml", h.Sitemap)
	r.GET("/robots.txt", h.Robots)

	// Public site.
	r.GET("/", h.Home)
	r.GET("/services", h.ServicesPage)
	r.GET("/products", h.ProductsPage)
	r.GET("/products/:slug", h.ProductDetail)
	r.GET("/prices", h.PricesPage)
	r.GET("/masters", h.MastersPage)
	r.GET("/works", h.WorksPage)
	r.GET("/contact", h.Contact)
	r.GET("/legal", h.Legal)
	r.GET("/privacy", h.Privacy)

	// Back office. Login attempts are rate limited per client IP.
	loginLimiter := middleware.NewLoginLimiter(rate.Every(rateWindow), loginBurst)

	admin := r.Group(middleware.AdminPrefix)
	{
		admin.GET("/login", h.LoginForm)
		admin.POST("/login", loginLimiter.RateLimit(), h.Login)
		admin.POST("/logout", h.Logout)

		admin.GET("", h.Dashboard)
		admin.GET("/settings", h.Settings)
		admin.POST("/settings", h.UpdateSettings)

		admin.GET("/categories-admin", h.CategoriesList)
		admin.GET("/categories-admin/new", h.CategoryNew)
		admin.POST("/categories-admin", h.CategoryCreate)
		admin.GET("/categories-admin/:id/edit", h.CategoryEdit)
		admin.POST("/categories-admin/:id", h.CategoryUpdate)
		admin.POST("/categories-admin/:id/delete", h.CategoryDelete)
		admin.POST("/categories-admin/:id/sort-order", h.CategorySortOrder)

		admin.GET("/services-admin", h.ServicesAdminList)
		admin.GET("/services-admin/new", h.ServiceNew)
		admin.POST("/services-admin", h.ServiceCreate)
		admin.GET("/services-admin/:id/edit", h.ServiceEdit)
		admin.POST("/services-admin/:id", h.ServiceUpdate)
		admin.POST("/services-admin/:id/delete", h.ServiceDelete)

		admin.GET("/prices-admin", h.PricesAdminList)
		admin.GET("/prices-admin/new", h.PriceNew)
		admin.POST("/prices-admin", h.PriceCreate)
		admin.GET("/prices-admin/:id/edit", h.PriceEdit)
		admin.POST("/prices-admin/:id", h.PriceUpdate)
		admin.POST("/prices-admin/:id/delete", h.PriceDelete)
		admin.POST("/prices-admin/:id/sort-order", h.PriceSortOrder)

		admin.GET("/products-admin", h.ProductsAdminList)
		admin.GET("/products-admin/new", h.ProductNew)
		admin.POST("/products-admin", h.ProductCreate)
		admin.GET("/products-admin/:id/edit", h.ProductEdit)
		admin.POST("/products-admin/:id", h.ProductUpdate)
		admin.POST("/products-admin/:id/delete", h.ProductDelete)

		admin.GET("/works-admin", h.WorksAdminList)
		admin.GET("/works-admin/new", h.WorkNew)
		admin.POST("/works-admin", h.WorkCreate)
		admin.POST("/works-admin/:id/delete", h.WorkDelete)

		admin.GET("/masters-admin", h.MastersAdminList)
		admin.GET("/masters-admin/new", h.MasterNew)
		admin.POST("/masters-admin", h.MasterCreate)
		admin.GET("/masters-admin/:id/edit", h.MasterEdit)
		admin.POST("/masters-admin/:id", h.MasterUpdate)
		admin.POST("/masters-admin/:id/delete", h.MasterDelete)
	}

	r.NoRoute(h.NotFound)

	return r
}
