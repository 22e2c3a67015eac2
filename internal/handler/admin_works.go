package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/pkg/query"
)

func (h *Handler) WorksAdminList(c *gin.Context) {
	page := pageNum(c)
	works, meta, err := h.svc.Works.GetAll(c.Request.Context(),
		query.Params{}.SetInt("page", page).SetInt("limit", 50), service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: works list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/works_list", listAlerts(c, gin.H{
		"Title": "Réalisations",
		"Works": works,
		"Meta":  meta,
	}))
}

func (h *Handler) WorkNew(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/work_form", gin.H{
		"Title":    "Nouvelle réalisation",
		"Services": h.serviceOptions(c.Request.Context()),
	})
}

func (h *Handler) WorkCreate(c *gin.Context) {
	input := action.WorkInput{
		ServiceID: c.PostForm("serviceId"),
		Image:     readUpload(c, "image"),
	}

	result := h.actions.CreateWork(c.Request.Context(), h.session.Token(c), input)
	if !result.Success {
		h.render.HTML(c, http.StatusBadRequest, "admin/work_form", gin.H{
			"Title":    "Nouvelle réalisation",
			"Services": h.serviceOptions(c.Request.Context()),
			"Error":    result.Error,
			"Input":    input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminWorks, result)
}

func (h *Handler) WorkDelete(c *gin.Context) {
	result := h.actions.DeleteWork(c.Request.Context(), h.session.Token(c), c.Param("id"))
	redirectResult(c, cache.ViewAdminWorks, result)
}
