// README: Admin session and dashboard handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/admin"
)

type AdminHandler struct {
	sessions *admin.Service
	stats    *admin.StatsService
}

func NewAdminHandler(sessions *admin.Service, stats *admin.StatsService) *AdminHandler {
	return &AdminHandler{sessions: sessions, stats: stats}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	token, a, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": a.ID, "email": a.Email, "role": a.Role},
	})
}

// Logout revokes the presented token. The token comes from the same
// Authorization header the auth middleware reads.
func (h *AdminHandler) Logout(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || token == "" {
		writeError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		writeAdminError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"stats":   stats,
		"revenue": stats.RevenueMoney().String(),
	})
}
