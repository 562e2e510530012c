package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"daily-planner-api/internal/auth"
	"daily-planner-api/internal/models"
)

type staticSession struct {
	id *models.Identity
}

func (s staticSession) Identity() (models.Identity, bool) {
	if s.id == nil {
		return models.Identity{}, false
	}
	return *s.id, true
}

var ada = models.Identity{Name: "Ada", Email: "ada@example.com"}

func newRouter(signer *auth.Signer, sessions SessionSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionAuth(signer, sessions))
	r.GET("/protected", func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.Email)
	})
	return r
}

func TestSessionAuth_Success(t *testing.T) {
	signer := auth.NewSigner("secret", "", "", 0)
	r := newRouter(signer, staticSession{id: &ada})

	token, err := signer.GenerateToken(models.Identity{Name: "Ada", Email: "ADA@example.com"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ada@example.com", w.Body.String())
}

func TestSessionAuth_QueryToken(t *testing.T) {
	signer := auth.NewSigner("secret", "", "", 0)
	r := newRouter(signer, staticSession{id: &ada})

	token, err := signer.GenerateToken(ada)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	r := newRouter(auth.NewSigner("secret", "", "", 0), staticSession{id: &ada})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_InactiveIdentity(t *testing.T) {
	signer := auth.NewSigner("secret", "", "", 0)
	token, err := signer.GenerateToken(ada)
	require.NoError(t, err)

	other := models.Identity{Name: "Bob", Email: "bob@example.com"}
	for _, sessions := range []SessionSource{staticSession{}, staticSession{id: &other}} {
		r := newRouter(signer, sessions)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Session is no longer active")
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Contains(t, buf.String(), "status=418")
	require.Contains(t, buf.String(), "path=/x")
	require.Contains(t, buf.String(), "level=WARN")
}
