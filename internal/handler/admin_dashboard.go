package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/pkg/query"
)

// Dashboard shows one total per resource. Counts come from limit=1 list
// calls, bypassing the cache so the numbers reflect the latest writes.
// A failing count renders as zero.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	one := query.Params{}.SetInt("limit", 1)

	var categories, services, prices, products, works, masters int

	count := func(name string, dst *int, fetch func() (model.Meta, error)) func() error {
		return func() error {
			meta, err := fetch()
			if err != nil {
				h.log.Error(err, "dashboard: count unavailable", "resource", name)
				return nil
			}
			*dst = meta.Total
			return nil
		}
	}

	g := new(errgroup.Group)
	g.Go(count("categories", &categories, func() (model.Meta, error) {
		_, m, err := h.svc.Categories.GetAll(ctx, one, service.NoStore())
		return m, err
	}))
	g.Go(count("services", &services, func() (model.Meta, error) {
		_, m, err := h.svc.Services.GetAll(ctx, one, service.NoStore())
		return m, err
	}))
	g.Go(count("prices", &prices, func() (model.Meta, error) {
		_, m, err := h.svc.Prices.GetAll(ctx, one, service.NoStore())
		return m, err
	}))
	g.Go(count("products", &products, func() (model.Meta, error) {
		_, m, err := h.svc.Products.GetAll(ctx, one, service.NoStore())
		return m, err
	}))
	g.Go(count("works", &works, func() (model.Meta, error) {
		_, m, err := h.svc.Works.GetAll(ctx, one, service.NoStore())
		return m, err
	}))
	g.Go(count("masters", &masters, func() (model.Meta, error) {
		_, m, err := h.svc.Masters.GetAll(ctx, one, service.NoStore())
		return m, err
	}))
	_ = g.Wait()

	h.render.HTML(c, http.StatusOK, "admin/dashboard", gin.H{
		"Title":      "Tableau de bord",
		"Categories": categories,
		"Services":   services,
		"Prices":     prices,
		"Products":   products,
		"Works":      works,
		"Masters":    masters,
	})
}
