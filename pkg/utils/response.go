package utils

import (
	"github.com/gin-gonic/gin"
)

// Format error standar biar frontend enak bacanya: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIError mengirim response error dengan status code yang sesuai
func APIError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
