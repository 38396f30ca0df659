package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rachelh2071/earthquake-tracker/internal/controller"
	"github.com/rachelh2071/earthquake-tracker/internal/query"
)

type Handler struct {
	ctrl *controller.Controller
}

func NewHandler(ctrl *controller.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/quakes", h.getQuakes)
	r.GET("/api/quakes/search", h.searchQuakes)
	r.GET("/api/snapshot", h.getSnapshot)
	r.GET("/health", h.health)
}

func (h *Handler) getQuakes(c *gin.Context) {
	tf, ok := query.ParseTimeframe(c.DefaultQuery("window", "day"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "window must be one of: hour, day, week",
		})
		return
	}

	snap := h.ctrl.SelectTimeframe(c.Request.Context(), tf)
	c.JSON(http.StatusOK, toView(snap))
}

func (h *Handler) searchQuakes(c *gin.Context) {
	snap, ok := h.ctrl.SubmitSearch(c.Request.Context(), c.Query("q"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "q must not be empty",
		})
		return
	}

	c.JSON(http.StatusOK, toView(snap))
}

func (h *Handler) getSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, toView(h.ctrl.Snapshot()))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
