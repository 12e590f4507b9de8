package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"klinik-backend/internal/auth"
	"klinik-backend/internal/middleware"
	"klinik-backend/internal/models"
	"klinik-backend/internal/notify"
	"klinik-backend/internal/payment"
	"klinik-backend/internal/store"
	"klinik-backend/pkg/logger"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handler memegang semua dependency service: KV store, identity provider,
// payment gateway, dan notifier. Semuanya di-inject dari main, tidak ada
// state global — antar request handler ini stateless.
type Handler struct {
	store    store.KV
	identity *auth.IdentityProvider
	payments payment.Gateway // boleh nil: endpoint pembayaran balas 503
	notifier *notify.Notifier
	log      *logger.Logger
}

func New(kv store.KV, identity *auth.IdentityProvider, payments payment.Gateway, notifier *notify.Notifier, log *logger.Logger) *Handler {
	return &Handler{
		store:    kv,
		identity: identity,
		payments: payments,
		notifier: notifier,
		log:      log,
	}
}

// Health untuk cek service hidup
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// currentUser memuat profil user yang sedang login dari KV store.
// Kalau gagal (belum login, atau token valid tapi profilnya tidak ada),
// response error sudah ditulis dan yang dikembalikan false.
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		utils.APIError(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	raw, err := h.store.Get(c.Request.Context(), models.UserKey(userID.(string)))
	if errors.Is(err, store.ErrNotFound) {
		utils.APIError(c, http.StatusNotFound, "User data not found")
		return nil, false
	}
	if err != nil {
		h.serverError(c, err, "Gagal mengambil data user")
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		h.serverError(c, err, "Dokumen user rusak")
		return nil, false
	}

	return &user, true
}

// serverError mencatat error internal dan membalas 500 generik,
// detail error tidak pernah bocor ke client
func (h *Handler) serverError(c *gin.Context, err error, msg string) {
	h.log.WithError(err).Error(msg)
	utils.APIError(c, http.StatusInternalServerError, "Internal server error")
}
