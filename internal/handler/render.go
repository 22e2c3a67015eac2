package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/middleware"
	"github.com/delote/beauty-web/pkg/format"
)

// publicPages and adminPages name every template set the renderer builds.
// Each page is parsed together with the shared partials so it can fill the
// layout blocks.
var publicPages = []string{
	"home", "services", "products", "product_detail", "prices",
	"masters", "works", "contact", "legal", "privacy", "notfound",
}

var adminPages = []string{
	"login", "dashboard", "settings",
	"categories_list", "category_form",
	"services_list", "service_form",
	"prices_list", "price_form",
	"products_list", "product_form",
	"works_list", "work_form",
	"masters_list", "master_form",
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(fsys fs.FS, publicAPIBase string) (*Renderer, error) {
	funcs := template.FuncMap{
		"price":       format.Price,
		"date":        format.Date,
		"dateShort":   format.DateShort,
		"dateTime":    format.DateTime,
		"section":     format.SectionName,
		"truncate":    format.Truncate,
		"pluralize":   format.Pluralize,
		"img":         func(path string) string { return format.ImageURL(publicAPIBase, path) },
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
		"currentYear": func() int { return time.Now().Year() },
	}

	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range publicPages {
		t, err := template.New(page).Funcs(funcs).ParseFS(fsys,
			"templates/partials.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}

	for _, page := range adminPages {
		t, err := template.New(page).Funcs(funcs).ParseFS(fsys,
			"templates/admin/partials.html",
			"templates/admin/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse admin template %s: %w", page, err)
		}
		r.pages["admin/"+page] = t
	}

	return r, nil
}

// HTML renders a page into the layout defined by its partials.
func (r *Renderer) HTML(c *gin.Context, status int, page string, data gin.H) {
	t, ok := r.pages[page]
	if !ok {
		c.String(http.StatusInternalServerError, "template not found: %s", page)
		return
	}

	if data == nil {
		data = gin.H{}
	}
	data["Path"] = c.GetString(middleware.ContextPath)

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(c.Writer, "layout", data); err != nil {
		c.String(http.StatusInternalServerError, "render failed")
	}
}

// NotFound renders the dedicated missing-resource page.
func (r *Renderer) NotFound(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "notfound", gin.H{"Title": "Page non trouvée"})
}
