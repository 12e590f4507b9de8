package middleware

import (
	"net/http"
	"strings"

	"klinik-backend/internal/auth"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Key di gin.Context tempat user id hasil resolve token disimpan
const ContextUserID = "userID"

// AuthMiddleware memastikan request membawa bearer token yang valid.
// Token di-resolve lewat IdentityProvider; user id-nya disimpan di context
// untuk dipakai handler. Cek role TIDAK dilakukan di sini — itu urusan
// masing-masing handler karena aturannya beda-beda per operasi.
func AuthMiddleware(identity *auth.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIError(c, http.StatusUnauthorized, "No access token provided")
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIError(c, http.StatusUnauthorized, "No access token provided")
			c.Abort()
			return
		}

		// 3. Resolve token jadi user id
		userID, err := identity.ResolveToken(parts[1])
		if err != nil {
			utils.APIError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
