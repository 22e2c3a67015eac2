package handler

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/pkg/query"
)

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticSitemapPaths = []string{
	"/", "/services", "/works", "/prices", "/products", "/masters", "/contact",
}

// Sitemap emits the static pages plus one entry per published service and
// product. Catalog fetch failures degrade to the static set.
func (h *Handler) Sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	base := strings.TrimRight(h.cfg.Site.BaseURL, "/")

	set := sitemapSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticSitemapPaths {
		priority := 0.7
		if p == "/" {
			priority = 1.0
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p, ChangeFreq: "weekly", Priority: priority})
	}

	services, _, err := h.svc.Services.GetAll(ctx, query.Params{}.SetInt("limit", 500))
	if err != nil {
		h.log.Error(err, "sitemap: services unavailable")
	}
	for _, s := range services {
		if s.Slug != "" {
			set.URLs = append(set.URLs, sitemapURL{Loc: base + "/services#" + s.Slug, ChangeFreq: "weekly", Priority: 0.6})
		}
	}

	products, _, err := h.svc.Products.GetAll(ctx, query.Params{}.SetInt("limit", 500))
	if err != nil {
		h.log.Error(err, "sitemap: products unavailable")
	}
	for _, p := range products {
		if p.Slug != "" {
			set.URLs = append(set.URLs, sitemapURL{Loc: base + "/products/" + p.Slug, ChangeFreq: "weekly", Priority: 0.6})
		}
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(http.StatusOK)
	c.Writer.WriteString(xml.Header)
	enc := xml.NewEncoder(c.Writer)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		h.log.Error(err, "sitemap: encode failed")
	}
}

// Robots keeps crawlers out of the back office.
func (h *Handler) Robots(c *gin.Context) {
	base := strings.TrimRight(h.cfg.Site.BaseURL, "/")
	body := "User-agent: *\n" +
		"Disallow: /beauty-admin\n" +
		"\n" +
		"Sitemap: " + base + "/sitemap.xml\n"
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, body)
}
