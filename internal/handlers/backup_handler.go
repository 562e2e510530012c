package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-planner-api/internal/planner"
)

// maxBackupBytes bounds an uploaded backup.
const maxBackupBytes = 5 << 20

// ExportBackup handles GET /api/backup
func (h *Handler) ExportBackup(c *gin.Context) {
	doc, err := h.app.Export()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", planner.BackupFilename))
	c.IndentedJSON(http.StatusOK, doc)
}

// ImportBackup handles POST /api/backup?confirm=true with the backup as the raw body.
func (h *Handler) ImportBackup(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBackupBytes)
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Backup is too large"})
		return
	}

	tasks, err := h.app.Import(c.Request.Context(), data, confirmation(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}
