package handler

import (
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

// listAlerts pulls the post-redirect flash values out of the query string.
func listAlerts(c *gin.Context, data gin.H) gin.H {
	if msg := c.Query("saved"); msg != "" {
		data["Notice"] = msg
	}
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}
	return data
}

func redirectResult(c *gin.Context, listPath string, result action.Result) {
	if result.Success {
		c.Redirect(http.StatusSeeOther, listPath+"?saved="+url.QueryEscape(result.Message))
		return
	}
	c.Redirect(http.StatusSeeOther, listPath+"?error="+url.QueryEscape(result.Error))
}

func (h *Handler) CategoriesList(c *gin.Context) {
	params := query.Params{}.SetInt("limit", 200)
	categories, _, err := h.svc.Categories.GetAll(c.Request.Context(), params, service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: categories list unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/categories_list", listAlerts(c, gin.H{
		"Title":      "Catégories",
		"Categories": categories,
	}))
}

func (h *Handler) CategoryNew(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/category_form", gin.H{
		"Title":    "Nouvelle catégorie",
		"Sections": model.Sections,
	})
}

func (h *Handler) CategoryCreate(c *gin.Context) {
	input := action.CategoryInput{
		Title:     strings.TrimSpace(c.PostForm("title")),
		Section:   c.PostForm("section"),
		SortOrder: c.PostForm("sortOrder"),
	}

	result := h.actions.CreateCategory(c.Request.Context(), h.session.Token(c), input)
	if !result.Success {
		h.render.HTML(c, http.StatusBadRequest, "admin/category_form", gin.H{
			"Title":    "Nouvelle catégorie",
			"Sections": model.Sections,
			"Error":    result.Error,
			"Input":    input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminCategories, result)
}

func (h *Handler) CategoryEdit(c *gin.Context) {
	category, err := h.svc.Categories.GetByID(c.Request.Context(), c.Param("id"), service.NoStore())
	if err != nil {
		h.log.Error(err, "admin: category unavailable", "id", c.Param("id"))
		c.Redirect(http.StatusSeeOther, cache.ViewAdminCategories+"?error="+url.QueryEscape("Catégorie non trouvée"))
		return
	}
	h.render.HTML(c, http.StatusOK, "admin/category_form", gin.H{
		"Title":    "Modifier la catégorie",
		"Category": category,
		"Sections": model.Sections,
	})
}

func (h *Handler) CategoryUpdate(c *gin.Context) {
	id := c.Param("id")
	input := action.CategoryInput{
		Title:     strings.TrimSpace(c.PostForm("title")),
		SortOrder: c.PostForm("sortOrder"),
	}

	result := h.actions.UpdateCategory(c.Request.Context(), h.session.Token(c), id, input)
	if !result.Success {
		category, _ := h.svc.Categories.GetByID(c.Request.Context(), id, service.NoStore())
		h.render.HTML(c, http.StatusBadRequest, "admin/category_form", gin.H{
			"Title":    "Modifier la catégorie",
			"Category": category,
			"Sections": model.Sections,
			"Error":    result.Error,
			"Input":    input,
		})
		return
	}
	redirectResult(c, cache.ViewAdminCategories, result)
}

func (h *Handler) CategoryDelete(c *gin.Context) {
	result := h.actions.DeleteCategory(c.Request.Context(), h.session.Token(c), c.Param("id"))
	redirectResult(c, cache.ViewAdminCategories, result)
}

func (h *Handler) CategorySortOrder(c *gin.Context) {
	sortOrder, err := strconv.Atoi(c.PostForm("sortOrder"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, cache.ViewAdminCategories+"?error="+url.QueryEscape("Ordre invalide"))
		return
	}
	result := h.actions.UpdateCategorySortOrder(c.Request.Context(), h.session.Token(c), c.Param("id"), sortOrder)
	redirectResult(c, cache.ViewAdminCategories, result)
}
