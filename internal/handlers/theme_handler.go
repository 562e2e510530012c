package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApplyThemeRequest selects a theme.
type ApplyThemeRequest struct {
	ThemeID string `json:"themeId" binding:"required"`
}

// GetStats handles GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Snapshot().Stats)
}

// GetProgress handles GET /api/progress
func (h *Handler) GetProgress(c *gin.Context) {
	p, err := h.app.Progress()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetThemes handles GET /api/themes
func (h *Handler) GetThemes(c *gin.Context) {
	themes, err := h.app.Themes()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"themes": themes,
		"active": h.app.Snapshot().Theme,
	})
}

// ApplyTheme handles PUT /api/theme
func (h *Handler) ApplyTheme(c *gin.Context) {
	var req ApplyThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "themeId is required"})
		return
	}
	if err := h.app.ApplyTheme(c.Request.Context(), req.ThemeID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.ThemeID})
}

// CurrentNotification handles GET /api/notifications/current. 204 when nothing is showing.
func (h *Handler) CurrentNotification(c *gin.Context) {
	n, ok := h.toaster.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}
