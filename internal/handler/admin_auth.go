package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/middleware"
)

// LoginForm renders the sign-in page. The guard already bounced
// authenticated visitors to the dashboard.
func (h *Handler) LoginForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin/login", gin.H{
		"Title": "Connexion",
		"From":  c.Query("from"),
	})
}

// Login exchanges credentials for a token and stores it in the session
// cookie. On failure the form is re-rendered with the French error.
func (h *Handler) Login(c *gin.Context) {
	input := action.LoginInput{
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}
	from := c.PostForm("from")

	result, login := h.actions.Login(c.Request.Context(), input)
	if !result.Success {
		h.render.HTML(c, http.StatusUnauthorized, "admin/login", gin.H{
			"Title": "Connexion",
			"Error": result.Error,
			"Email": input.Email,
			"From":  from,
		})
		return
	}

	h.session.SetToken(c, login.Token)

	target := middleware.AdminPrefix
	if strings.HasPrefix(from, middleware.AdminPrefix) {
		target = from
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Logout drops the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.session.Clear(c)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Settings renders the profile page with a fresh /admin/me read.
func (h *Handler) Settings(c *gin.Context) {
	user, err := h.svc.Auth.CurrentUser(c.Request.Context(), h.session.Token(c))
	if err != nil {
		h.log.Error(err, "settings: current user unavailable")
	}
	h.render.HTML(c, http.StatusOK, "admin/settings", gin.H{
		"Title": "Paramètres",
		"User":  user,
	})
}

// UpdateSettings changes the admin email or password.
func (h *Handler) UpdateSettings(c *gin.Context) {
	input := action.ProfileInput{
		CurrentPassword: c.PostForm("currentPassword"),
		NewEmail:        strings.TrimSpace(c.PostForm("newEmail")),
		NewPassword:     c.PostForm("newPassword"),
		ConfirmPassword: c.PostForm("confirmPassword"),
	}

	result := h.actions.UpdateProfile(c.Request.Context(), h.session.Token(c), input)

	user, err := h.svc.Auth.CurrentUser(c.Request.Context(), h.session.Token(c))
	if err != nil {
		h.log.Error(err, "settings: current user unavailable")
	}

	data := gin.H{"Title": "Paramètres", "User": user}
	status := http.StatusOK
	if result.Success {
		data["Notice"] = result.Message
	} else {
		data["Error"] = result.Error
		status = http.StatusBadRequest
	}
	h.render.HTML(c, status, "admin/settings", data)
}
