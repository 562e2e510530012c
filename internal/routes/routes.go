package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"daily-planner-api/internal/auth"
	"daily-planner-api/internal/handlers"
	"daily-planner-api/internal/middleware"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Handler *handlers.Handler
	Signer  *auth.Signer
	Session middleware.SessionSource
	Logger  *slog.Logger
}

func SetupRoutes(d Deps) *gin.Engine {
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery(), middleware.RequestLogger(d.Logger))

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Daily Planner API is running",
		})
	})

	h := d.Handler
	api := ginRouter.Group("/api")
	{
		api.POST("/login", h.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.SessionAuth(d.Signer, d.Session))
	{
		protected.GET("/session", h.Session)
		protected.POST("/logout", h.Logout)

		protected.GET("/tasks", h.GetTasks)
		protected.POST("/tasks", h.CreateTask)
		protected.DELETE("/tasks", h.ClearAll)
		protected.DELETE("/tasks/completed", h.ClearCompleted)
		protected.PUT("/tasks/:id", h.ReplaceTask)
		protected.PATCH("/tasks/:id", h.EditTask)
		protected.PATCH("/tasks/:id/toggle", h.ToggleTask)
		protected.DELETE("/tasks/:id", h.DeleteTask)

		protected.GET("/backup", h.ExportBackup)
		protected.POST("/backup", h.ImportBackup)

		protected.GET("/stats", h.GetStats)
		protected.GET("/progress", h.GetProgress)
		protected.GET("/themes", h.GetThemes)
		protected.PUT("/theme", h.ApplyTheme)
		protected.GET("/notifications/current", h.CurrentNotification)
	}

	// websocket auth uses ?token= since browsers cannot set headers on upgrade
	ginRouter.GET("/ws", middleware.SessionAuth(d.Signer, d.Session), h.WebSocket)

	return ginRouter
}
