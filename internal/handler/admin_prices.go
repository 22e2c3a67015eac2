package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/pkg/query"
)

func (h *Handler) serviceOptions(ctx context.Context) []model.Option {
	options, err := h.svc.Services.GetForSelect(ctx, service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: service options unavailable")
	}
	return options
}

func (h *Handler) PricesAdminList(c *gin.Context) {
	params := query.Params{}.SetInt("limit", 500)
	prices, _, err := h.svc.Prices.GetAll(c.Request.Context(), params, service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: prices list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/prices_list", listAlerts(c, gin.H{
		"Title":  "Tarifs",
		"Prices": prices,
	}))
}

func (h *Handler) PriceNew(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/price_form", gin.H{
		"Title":    "Nouveau tarif",
		"Services": h.serviceOptions(c.Request.Context()),
	})
}

func (h *Handler) PriceCreate(c *gin.Context) {
	input := action.PriceInput{
		Title:     strings.TrimSpace(c.PostForm("title")),
		Price:     strings.TrimSpace(c.PostForm("price")),
		ServiceID: c.PostForm("serviceId"),
		SortOrder: c.PostForm("sortOrder"),
	}

	result := h.actions.CreatePrice(c.Request.Context(), h.session.Token(c), input)
	if !result.Success {
		h.render.HTML(c, http.StatusBadRequest, "admin/price_form", gin.H{
			"Title":    "Nouveau tarif",
			"Services": h.serviceOptions(c.Request.Context()),
			"Error":    result.Error,
			"Input":    input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminPrices, result)
}

func (h *Handler) PriceEdit(c *gin.Context) {
	price, err := h.svc.Prices.GetByID(c.Request.Context(), c.Param("id"), service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: price unavailable", "id", c.Param("id"))
		c.Redirect(http.StatusSeeOther, cache.ViewAdminPrices+"?error="+url.QueryEscape("Tarif non trouvé"))
		return
	}
	h.render.HTML(c, http.StatusOK, "admin/price_form", gin.H{
		"Title":    "Modifier le tarif",
		"Price":    price,
		"Services": h.serviceOptions(c.Request.Context()),
	})
}

func (h *Handler) PriceUpdate(c *gin.Context) {
	id := c.Param("id")
	input := action.PriceUpdateInput{
		Title:     strings.TrimSpace(c.PostForm("title")),
		Price:     strings.TrimSpace(c.PostForm("price")),
		ServiceID: c.PostForm("serviceId"),
		SortOrder: c.PostForm("sortOrder"),
	}

	result := h.actions.UpdatePrice(c.Request.Context(), h.session.Token(c), id, input)
	if !result.Success {
		price, _ := h.svc.Prices.GetByID(c.Request.Context(), id, service.NoStore())
		h.render.HTML(c, http.StatusBadRequest, "admin/price_form", gin.H{
			"Title":    "Modifier le tarif",
			"Price":    price,
			"Services": h.serviceOptions(c.Request.Context()),
			"Error":    result.Error,
			"Input":    input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminPrices, result)
}

func (h *Handler) PriceDelete(c *gin.Context) {
	result := h.actions.DeletePrice(c.Request.Context(), h.session.Token(c), c.Param("id"))
	redirectResult(c, cache.ViewAdminPrices, result)
}

func (h *Handler) PriceSortOrder(c *gin.Context) {
	sortOrder, err := strconv.Atoi(c.PostForm("sortOrder"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, cache.ViewAdminPrices+"?error="+url.QueryEscape("Ordre invalide"))
		return
	}
	result := h.actions.UpdatePriceSortOrder(c.Request.Context(), h.session.Token(c), c.Param("id"), sortOrder)
	redirectResult(c, cache.ViewAdminPrices, result)
}
