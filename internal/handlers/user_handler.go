package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser mengambil profil user yang sedang login
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
