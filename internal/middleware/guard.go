package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Admin area paths.
const (
	AdminPrefix = "/beauty-admin"
	LoginPath   = "/beauty-admin/login"
)

// ContextPath carries the requested path downstream so the admin layout
// can decide its chrome (the login page renders without the sidebar).
const ContextPath = "current_path"

// Guard protects the back office. It only checks cookie presence; token
// validity is established later, by whichever page actually needs the
// authenticated user, so a forged cookie gets you nothing but a login
// form after the first real API call.
func Guard(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		c.Set(ContextPath, path)

		if !strings.HasPrefix(path, AdminPrefix) {
			c.Next()
			return
		}

		token, _ := c.Cookie(cookieName)

		if path == LoginPath {
			// Already signed in: straight to the dashboard.
			if token != "" {
				c.Redirect(http.StatusFound, AdminPrefix)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if token == "" {
			// Remember where the visitor wanted to go.
			c.Redirect(http.StatusFound, LoginPath+"?from="+url.QueryEscape(path))
			c.Abort()
			return
		}

		c.Next()
	}
}
