package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"klinik-backend/internal/auth"
	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Signup mendaftarkan user baru beserta role-nya.
// Role dipilih sekali saat signup dan setelah itu tidak bisa diubah lewat API.
func (h *Handler) Signup(c *gin.Context) {
	// 1. Validasi Input JSON
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !models.ValidRole(input.Role) {
		utils.APIError(c, http.StatusBadRequest, "Invalid role. Must be dokter, pasien, or admin")
		return
	}

	// 2. Daftarkan kredensial ke identity provider
	id, err := h.identity.CreateUser(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, auth.ErrEmailTaken) {
		utils.APIError(c, http.StatusBadRequest, "Email sudah terdaftar")
		return
	}
	if err != nil {
		h.serverError(c, err, "Gagal membuat user di identity provider")
		return
	}

	// 3. Simpan profil user ke KV store
	user := models.User{
		ID:        id,
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Set(c.Request.Context(), models.UserKey(id), user); err != nil {
		h.serverError(c, err, "Gagal menyimpan profil user")
		return
	}

	h.log.Audit(id, "signup", "user", true)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Login memverifikasi kredensial dan mengembalikan bearer token
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	userID, err := h.identity.Login(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		utils.APIError(c, http.StatusUnauthorized, "Email atau password salah")
		return
	}
	if err != nil {
		h.serverError(c, err, "Gagal memproses login")
		return
	}

	// Profil harus ada; kredensial tanpa profil berarti data tidak konsisten
	raw, err := h.store.Get(c.Request.Context(), models.UserKey(userID))
	if err != nil {
		h.serverError(c, err, "Profil user tidak ditemukan padahal kredensial valid")
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		h.serverError(c, err, "Dokumen user rusak")
		return
	}

	// Kalau frontend kirim token FCM, simpan di profil untuk push notification
	if input.FCMToken != "" && input.FCMToken != user.FCMToken {
		user.FCMToken = input.FCMToken
		if err := h.store.Set(c.Request.Context(), models.UserKey(userID), user); err != nil {
			h.log.WithError(err).Warn("Gagal menyimpan token FCM")
		}
	}

	token, err := h.identity.IssueToken(userID)
	if err != nil {
		h.serverError(c, err, "Gagal generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
