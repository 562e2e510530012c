package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/auth"
	"daily-planner-api/internal/planner"
	"daily-planner-api/internal/realtime"
)

// Handler serves the planner API over one App.
type Handler struct {
	app     *app.App
	signer  *auth.Signer
	hub     *realtime.Hub
	toaster *realtime.Toaster
	log     *slog.Logger
}

func New(a *app.App, signer *auth.Signer, hub *realtime.Hub, toaster *realtime.Toaster, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{app: a, signer: signer, hub: hub, toaster: toaster, log: log}
}

// confirmation reads the confirm query parameter. HTTP clients answer the prompt up front.
func confirmation(c *gin.Context) app.Confirmer {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	if ok {
		return app.Yes
	}
	return app.No
}

// respondError maps domain errors to status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *planner.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, planner.ErrInvalidBackup):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup format. Expected a JSON array or { tasks: [] }."})
	case errors.Is(err, planner.ErrUnknownTheme):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme"})
	case errors.Is(err, planner.ErrThemeLocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "Theme is locked"})
	case errors.Is(err, app.ErrNotConfirmed):
		c.JSON(http.StatusConflict, gin.H{"error": "confirmation required"})
	case errors.Is(err, app.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
	case errors.Is(err, app.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		h.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
