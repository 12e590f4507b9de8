package routes

import (
	"klinik-backend/internal/auth"
	"klinik-backend/internal/handlers"
	"klinik-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes memasang seluruh route API.
// Route publik: signup, login, health, dan webhook Midtrans.
// Sisanya wajib bawa bearer token (dicek AuthMiddleware); aturan role
// per operasi dicek di masing-masing handler.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, identity *auth.IdentityProvider) {

	// 1. PUBLIC ROUTES
	r.GET("/health", h.Health)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/payment/notification", h.HandlePaymentNotification)

	// 2. PROTECTED ROUTES (Harus Login / Punya Token)
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(identity))
	{
		protected.GET("/user", h.GetCurrentUser)

		// MODULE PASIEN
		protected.GET("/patients", h.ListPatients)
		protected.GET("/patient/:userId", h.GetPatient)
		protected.POST("/patient", h.UpsertPatient)

		// MODULE TRANSAKSI OBAT
		protected.GET("/transactions", h.ListTransactions)
		protected.POST("/transaction", h.CreateTransaction)
		protected.PUT("/transaction/:id", h.UpdateTransaction)
		protected.DELETE("/transaction/:id", h.DeleteTransaction)
		protected.POST("/transaction/:id/pay", h.PayTransaction)

		// Dashboard admin
		protected.GET("/stats", h.GetStats)
	}
}
