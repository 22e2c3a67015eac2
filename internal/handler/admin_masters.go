package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/pkg/query"
)

func (h *Handler) MastersAdminList(c *gin.Context) {
	masters, _, err := h.svc.Masters.GetAll(c.Request.Context(),
		query.Params{}.SetInt("limit", 200), service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: masters list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/masters_list", listAlerts(c, gin.H{
		"Title":   "Professionnels",
		"Masters": masters,
	}))
}

func (h *Handler) MasterNew(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/master_form", gin.H{
		"Title": "Nouveau professionnel",
	})
}

func (h *Handler) MasterCreate(c *gin.Context) {
	input := action.MasterInput{
		FullName:   strings.TrimSpace(c.PostForm("fullName")),
		Speciality: strings.TrimSpace(c.PostForm("speciality")),
		Image:      readUpload(c, "image"),
	}

	result := h.actions.CreateMaster(c.Request.Context(), h.session.Token(c), input)
	if !result.Success {
		h.render.HTML(c, http.StatusBadRequest, "admin/master_form", gin.H{
			"Title": "Nouveau professionnel",
			"Error": result.Error,
			"Input": input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminMasters, result)
}

func (h *Handler) MasterEdit(c *gin.Context) {
	master, err := h.svc.Masters.GetByID(c.Request.Context(), c.Param("id"), service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: master unavailable", "id", c.Param("id"))
		c.Redirect(http.StatusSeeOther, cache.ViewAdminMasters+"?error="+url.QueryEscape("Professionnel non trouvé"))
		return
	}
	h.render.HTML(c, http.StatusOK, "admin/master_form", gin.H{
		"Title":  "Modifier le professionnel",
		"Master": master,
	})
}

func (h *Handler) MasterUpdate(c *gin.Context) {
	id := c.Param("id")
	input := action.MasterUpdateInput{
		FullName:   strings.TrimSpace(c.PostForm("fullName")),
		Speciality: strings.TrimSpace(c.PostForm("speciality")),
		Image:      readUpload(c, "image"),
	}

	result := h.actions.UpdateMaster(c.Request.Context(), h.session.Token(c), id, input)
	if !result.Success {
		master, _ := h.svc.Masters.GetByID(c.Request.Context(), id, service.NoStore())
		h.render.HTML(c, http.StatusBadRequest, "admin/master_form", gin.H{
			"Title":  "Modifier le professionnel",
			"Master": master,
			"Error":  result.Error,
			"Input":  input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminMasters, result)
}

func (h *Handler) MasterDelete(c *gin.Context) {
	result := h.actions.DeleteMaster(c.Request.Context(), h.session.Token(c), c.Param("id"))
	redirectResult(c, cache.ViewAdminMasters, result)
}
