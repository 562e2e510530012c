package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/auth"
	"daily-planner-api/internal/middleware"
	"daily-planner-api/internal/models"
	"daily-planner-api/internal/realtime"
	"daily-planner-api/internal/storage"
	"daily-planner-api/internal/testutil"
)

type testServer struct {
	router  *gin.Engine
	app     *app.App
	toaster *realtime.Toaster
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := realtime.NewHub()
	toaster := realtime.NewToaster(time.Minute)
	a := app.New(storage.NewSQLStore(db),
		app.WithLogger(log),
		app.WithNotifier(realtime.NewDispatcher(hub, toaster, log)),
	)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	a.Restore(ctx)

	signer := auth.NewSigner("test-secret", "", "", 0)
	h := New(a, signer, hub, toaster, log)

	r := gin.New()
	r.POST("/api/login", h.Login)
	p := r.Group("/api")
	p.Use(middleware.SessionAuth(signer, a))
	p.GET("/session", h.Session)
	p.POST("/logout", h.Logout)
	p.GET("/tasks", h.GetTasks)
	p.POST("/tasks", h.CreateTask)
	p.DELETE("/tasks", h.ClearAll)
	p.DELETE("/tasks/completed", h.ClearCompleted)
	p.PUT("/tasks/:id", h.ReplaceTask)
	p.PATCH("/tasks/:id", h.EditTask)
	p.PATCH("/tasks/:id/toggle", h.ToggleTask)
	p.DELETE("/tasks/:id", h.DeleteTask)
	p.GET("/backup", h.ExportBackup)
	p.POST("/backup", h.ImportBackup)
	p.GET("/stats", h.GetStats)
	p.GET("/progress", h.GetProgress)
	p.GET("/themes", h.GetThemes)
	p.PUT("/theme", h.ApplyTheme)
	p.GET("/notifications/current", h.CurrentNotification)

	return &testServer{router: r, app: a, toaster: toaster}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/login", map[string]string{"name": "Ada", "email": "ada@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "dark", resp.Theme)
	s.token = resp.Token
}

func (s *testServer) createTask(t *testing.T, title, priority string) models.Task {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/tasks", map[string]string{"title": title, "priority": priority})
	require.Equal(t, http.StatusCreated, w.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task
}
