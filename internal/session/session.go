// Package session owns the admin bearer-token cookie. The token is the
// sole authorization artifact; nothing else about the session is stored
// locally.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/config"
)

// Store reads and writes the http-only session cookie.
type Store struct {
	name   string
	maxAge int
	secure bool
}

func NewStore(cfg config.CookieConfig, secure bool) *Store {
	return &Store{
		name:   cfg.Name,
		maxAge: cfg.MaxAge,
		secure: secure,
	}
}

// Token returns the stored bearer token, or "" when no session exists.
func (s *Store) Token(c *gin.Context) string {
	token, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}
	return token
}

// SetToken installs the session cookie: httpOnly, SameSite=Lax, site-wide,
// Secure outside development.
func (s *Store) SetToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name, token, s.maxAge, "/", "", s.secure, true)
}

// Clear drops the session cookie unconditionally.
func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name, "", -1, "/", "", s.secure, true)
}

// CookieName exposes the configured name for the route guard, which only
// needs presence, not the value semantics.
func (s *Store) CookieName() string {
	return s.name
}
