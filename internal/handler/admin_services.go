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

func (h *Handler) serviceCategoryOptions(ctx context.Context) []model.Option {
	options, err := h.svc.Categories.GetForSelect(ctx, model.SectionService, service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: category options unavailable")
	}
	return options
}

func (h *Handler) ServicesAdminList(c *gin.Context) {
	params := query.Params{}.SetInt("limit", 200)
	services, _, err := h.svc.Services.GetAll(c.Request.Context(), params, service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: services list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/services_list", listAlerts(c, gin.H{
		"Title":    "Services",
		"Services": services,
	}))
}

func (h *Handler) ServiceNew(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/service_form", gin.H{
		"Title":      "Nouveau service",
		"Categories": h.serviceCategoryOptions(c.Request.Context()),
	})
}

func (h *Handler) ServiceCreate(c *gin.Context) {
	input := action.ServiceInput{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		CategoryID:  c.PostForm("categoryId"),
		Image:       readUpload(c, "image"),
	}

	result := h.actions.CreateService(c.Request.Context(), h.session.Token(c), input)
	if !result.Success {
		h.render.HTML(c, http.StatusBadRequest, "admin/service_form", gin.H{
			"Title":      "Nouveau service",
			"Categories": h.serviceCategoryOptions(c.Request.Context()),
			"Error":      result.Error,
			"Input":      input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminServices, result)
}

func (h *Handler) ServiceEdit(c *gin.Context) {
	svc, err := h.svc.Services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error(err, "admin: service unavailable", "id", c.Param("id"))
		c.Redirect(http.StatusSeeOther, cache.ViewAdminServices+"?error="+url.QueryEscape("Service non trouvé"))
		return
	}
	h.render.HTML(c, http.StatusOK, "admin/service_form", gin.H{
		"Title":      "Modifier le service",
		"Service":    svc,
		"Categories": h.serviceCategoryOptions(c.Request.Context()),
	})
}

func (h *Handler) ServiceUpdate(c *gin.Context) {
	id := c.Param("id")
	input := action.ServiceUpdateInput{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		CategoryID:  c.PostForm("categoryId"),
		Image:       readUpload(c, "image"),
	}

	result := h.actions.UpdateService(c.Request.Context(), h.session.Token(c), id, input)
	if !result.Success {
		svc, _ := h.svc.Services.GetByID(c.Request.Context(), id)
		h.render.HTML(c, http.StatusBadRequest, "admin/service_form", gin.H{
			"Title":      "Modifier le service",
			"Service":    svc,
			"Categories": h.serviceCategoryOptions(c.Request.Context()),
			"Error":      result.Error,
			"Input":      input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminServices, result)
}

func (h *Handler) ServiceDelete(c *gin.Context) {
	result := h.actions.DeleteService(c.Request.Context(), h.session.Token(c), c.Param("id"))
	redirectResult(c, cache.ViewAdminServices, result)
}
