package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/pkg/query"
)

func (h *Handler) productCategoryOptions(ctx context.Context) []model.Option {
	options, err := h.svc.Categories.GetForSelect(ctx, model.SectionProduct, service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: category options unavailable")
	}
	return options
}

func (h *Handler) ProductsAdminList(c *gin.Context) {
	page := pageNum(c)
	products, meta, err := h.svc.Products.GetAll(c.Request.Context(),
		query.Params{}.SetInt("page", page).SetInt("limit", 50), service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: products list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/products_list", listAlerts(c, gin.H{
		"Title":    "Produits",
		"Products": products,
		"Meta":     meta,
	}))
}

func (h *Handler) ProductNew(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/product_form", gin.H{
		"Title":      "Nouveau produit",
		"Categories": h.productCategoryOptions(c.Request.Context()),
	})
}

func (h *Handler) ProductCreate(c *gin.Context) {
	input := action.ProductInput{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Code:        strings.TrimSpace(c.PostForm("code")),
		Brand:       strings.TrimSpace(c.PostForm("brand")),
		CategoryID:  c.PostForm("categoryId"),
		Image:       readUpload(c, "image"),
	}

	result := h.actions.CreateProduct(c.Request.Context(), h.session.Token(c), input)
	if !result.Success {
		h.render.HTML(c, http.StatusBadRequest, "admin/product_form", gin.H{
			"Title":      "Nouveau produit",
			"Categories": h.productCategoryOptions(c.Request.Context()),
			"Error":      result.Error,
			"Input":      input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminProducts, result)
}

func (h *Handler) ProductEdit(c *gin.Context) {
	product, err := h.svc.Products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error(err, "admin: product unavailable", "id", c.Param("id"))
		c.Redirect(http.StatusSeeOther, cache.ViewAdminProducts+"?error="+url.QueryEscape("Produit non trouvé"))
		return
	}
	h.render.HTML(c, http.StatusOK, "admin/product_form", gin.H{
		"Title":      "Modifier le produit",
		"Product":    product,
		"Categories": h.productCategoryOptions(c.Request.Context()),
	})
}

func (h *Handler) ProductUpdate(c *gin.Context) {
	id := c.Param("id")
	input := action.ProductUpdateInput{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Code:        strings.TrimSpace(c.PostForm("code")),
		Brand:       strings.TrimSpace(c.PostForm("brand")),
		CategoryID:  c.PostForm("categoryId"),
		Image:       readUpload(c, "image"),
	}

	result := h.actions.UpdateProduct(c.Request.Context(), h.session.Token(c), id, input)
	if !result.Success {
		product, _ := h.svc.Products.GetByID(c.Request.Context(), id)
		h.render.HTML(c, http.StatusBadRequest, "admin/product_form", gin.H{
			"Title":      "Modifier le produit",
			"Product":    product,
			"Categories": h.productCategoryOptions(c.Request.Context()),
			"Error":      result.Error,
			"Input":      input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminProducts, result)
}

func (h *Handler) ProductDelete(c *gin.Context) {
	result := h.actions.DeleteProduct(c.Request.Context(), h.session.Token(c), c.Param("id"))
	redirectResult(c, cache.ViewAdminProducts, result)
}
