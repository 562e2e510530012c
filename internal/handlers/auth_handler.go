package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/models"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token    string          `json:"token"`
	Identity models.Identity `json:"identity"`
	Stats    models.Stats    `json:"stats"`
	Theme    string          `json:"theme"`
}

// LogoutRequest carries the answer to the logout prompt.
type LogoutRequest struct {
	Confirm bool `json:"confirm"`
}

// Login handles POST /api/login. Any well-formed name and email is accepted.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	state, err := h.app.Login(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.signer.GenerateToken(*state.Identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Identity: *state.Identity,
		Stats:    state.Stats,
		Theme:    state.Theme,
	})
}

// Session handles GET /api/session
func (h *Handler) Session(c *gin.Context) {
	state := h.app.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"identity": state.Identity,
		"stats":    state.Stats,
		"theme":    state.Theme,
		"count":    len(state.Tasks),
	})
}

// Logout handles POST /api/logout. The confirmation comes from the body or ?confirm=true.
func (h *Handler) Logout(c *gin.Context) {
	confirm := confirmation(c)
	var req LogoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Confirm {
			confirm = app.Yes
		}
	}

	if err := h.app.Logout(c.Request.Context(), confirm); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
