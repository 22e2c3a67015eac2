package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/apierror"
	"github.com/delote/beauty-web/pkg/query"
)

// sectionCategories loads the filter menu for one public section.
func (h *Handler) sectionCategories(ctx context.Context, section string) ([]model.Category, error) {
	params := query.Params{}
	params.Set("section", section)
	params.SetInt("limit", 100)
	items, _, err := h.svc.Categories.GetAll(ctx, params)
	return items, err
}

const (
	homeServices = 6
	homeWorks    = 6
	homeMasters  = 4
	homeProducts = 6
)

// Home fans out the four featured blocks concurrently. A failing block
// renders empty instead of taking the whole page down.
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		services []model.Service
		works    []model.Work
		masters  []model.Master
		products []model.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := h.svc.Services.GetFeatured(gctx, homeServices)
		if err != nil {
			h.log.Error(err, "home: featured services unavailable")
			return nil
		}
		services = items
		return nil
	})
	g.Go(func() error {
		items, err := h.svc.Works.GetLatest(gctx, homeWorks)
		if err != nil {
			h.log.Error(err, "home: latest works unavailable")
			return nil
		}
		works = items
		return nil
	})
	g.Go(func() error {
		items, err := h.svc.Masters.GetFeatured(gctx, homeMasters)
		if err != nil {
			h.log.Error(err, "home: featured masters unavailable")
			return nil
		}
		masters = items
		return nil
	})
	g.Go(func() error {
		items, err := h.svc.Products.GetFeatured(gctx, homeProducts)
		if err != nil {
			h.log.Error(err, "home: featured products unavailable")
			return nil
		}
		products = items
		return nil
	})
	_ = g.Wait()

	h.render.HTML(c, http.StatusOK, "home", gin.H{
		"Title":       "Institut de beauté",
		"Description": "Soins, coiffure et esthétique — découvrez nos services et nos réalisations.",
		"Services":    services,
		"Works":       works,
		"Masters":     masters,
		"Products":    products,
	})
}

// ServicesPage lists the catalog, optionally filtered by category.
func (h *Handler) ServicesPage(c *gin.Context) {
	ctx := c.Request.Context()
	categoryID := c.Query("category")

	categories, err := h.sectionCategories(ctx, model.SectionService)
	if err != nil {
		h.log.Error(err, "services: categories unavailable")
	}

	var services []model.Service
	if categoryID != "" {
		services, err = h.svc.Services.GetByCategory(ctx, categoryID)
	} else {
		services, _, err = h.svc.Services.GetAll(ctx, query.Params{}.SetInt("limit", 100))
	}
	if err != nil {
		h.log.Error(err, "services: list unavailable")
	}

	h.render.HTML(c, http.StatusOK, "services", gin.H{
		"Title":      "Services",
		"Categories": categories,
		"Services":   services,
		"Selected":   categoryID,
	})
}

// ProductsPage lists the shop with category, brand and text filters.
func (h *Handler) ProductsPage(c *gin.Context) {
	ctx := c.Request.Context()
	categoryID := c.Query("category")
	brand := c.Query("brand")
	search := c.Query("q")
	page := pageNum(c)
	const perPage = 12

	var (
		products []model.Product
		meta     model.Meta
		err      error
	)
	switch {
	case search != "":
		products, meta, err = h.svc.Products.Search(ctx, search, page, perPage)
	case categoryID != "":
		products, meta, err = h.svc.Products.GetByCategory(ctx, categoryID, page, perPage)
	default:
		params := query.Params{}
		params.Set("brand", brand)
		params.SetInt("page", page)
		params.SetInt("limit", perPage)
		products, meta, err = h.svc.Products.GetAll(ctx, params)
	}
	if err != nil {
		h.log.Error(err, "products: list unavailable")
	}

	categories, err := h.sectionCategories(ctx, model.SectionProduct)
	if err != nil {
		h.log.Error(err, "products: categories unavailable")
	}
	brands, err := h.svc.Products.GetBrands(ctx)
	if err != nil {
		h.log.Error(err, "products: brands unavailable")
	}

	h.render.HTML(c, http.StatusOK, "products", gin.H{
		"Title":      "Produits",
		"Products":   products,
		"Meta":       meta,
		"Categories": categories,
		"Brands":     brands,
		"Selected":   categoryID,
		"Brand":      brand,
		"Search":     search,
	})
}

// ProductDetail renders one product by slug, or the missing-page view.
func (h *Handler) ProductDetail(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.svc.Products.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if apierror.IsNotFound(err) {
			h.render.NotFound(c)
			return
		}
		h.log.Error(err, "product detail unavailable", "slug", c.Param("slug"))
		h.render.HTML(c, http.StatusBadGateway, "notfound", gin.H{"Title": "Service momentanément indisponible"})
		return
	}

	h.render.HTML(c, http.StatusOK, "product_detail", gin.H{
		"Title":       product.Title,
		"Description": product.Description,
		"Product":     product,
	})
}

// PricesPage renders the tariff board grouped by service.
func (h *Handler) PricesPage(c *gin.Context) {
	groups, err := h.svc.Prices.GetGrouped(c.Request.Context())
	if err != nil {
		h.log.Error(err, "prices: grouped list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "prices", gin.H{
		"Title":  "Tarifs",
		"Groups": groups,
	})
}

// MastersPage lists the staff directory.
func (h *Handler) MastersPage(c *gin.Context) {
	masters, _, err := h.svc.Masters.GetAll(c.Request.Context(), query.Params{}.SetInt("limit", 100))
	if err != nil {
		h.log.Error(err, "masters: list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "masters", gin.H{
		"Title":   "Nos professionnels",
		"Masters": masters,
	})
}

// WorksPage renders the portfolio, newest first, with pagination.
func (h *Handler) WorksPage(c *gin.Context) {
	page := pageNum(c)
	params := query.Params{}
	params.SetInt("page", page)
	params.SetInt("limit", 24)

	works, meta, err := h.svc.Works.GetAll(c.Request.Context(), params)
	if err != nil {
		h.log.Error(err, "works: list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "works", gin.H{
		"Title": "Réalisations",
		"Works": works,
		"Meta":  meta,
	})
}

func (h *Handler) Contact(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "contact", gin.H{"Title": "Contact"})
}

func (h *Handler) Legal(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "legal", gin.H{"Title": "Mentions légales"})
}

func (h *Handler) Privacy(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "privacy", gin.H{"Title": "Politique de confidentialité"})
}
