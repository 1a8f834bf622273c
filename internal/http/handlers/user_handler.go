// README: Admin-facing rider handlers: listing and ride history.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/user"
	"jatriwheels/internal/types"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{users: svc}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	out, err := h.users.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"users": out})
}

func (h *UserHandler) RideHistory(c *gin.Context) {
	rides, err := h.users.RideHistory(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"rides": rides})
}
