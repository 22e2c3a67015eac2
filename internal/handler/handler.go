// Package handler serves the rendered pages: the public marketing site and
// the back office under /beauty-admin. Handlers read through the service
// layer, mutate through the action layer, and never talk to the backend API
// directly.
package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/config"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/internal/session"
	"github.com/delote/beauty-web/pkg/logger"
)

type Handler struct {
	cfg     *config.Config
	render  *Renderer
	session *session.Store
	svc     *service.Registry
	actions *action.Actions
	log     *logger.Logger
}

func New(cfg *config.Config, render *Renderer, sess *session.Store, svc *service.Registry, actions *action.Actions, log *logger.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		render:  render,
		session: sess,
		svc:     svc,
		actions: actions,
		log:     log,
	}
}

// Health reports liveness for the load balancer.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound renders the missing-page view for unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	h.render.NotFound(c)
}

// readUpload extracts an uploaded file into an action.Upload. A missing
// file field yields nil rather than an error so optional images work.
func readUpload(c *gin.Context, field string) *action.Upload {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return &action.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	}
}

// pageNum parses the ?page= parameter, defaulting to 1.
func pageNum(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
