package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"klinik-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	e := newTestEnv(t)

	// Field wajib kurang
	w := e.do(http.MethodPost, "/signup", "", gin.H{
		"email":    "budi@klinik.id",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Role tidak dikenal
	w = e.do(http.MethodPost, "/signup", "", gin.H{
		"email":    "budi@klinik.id",
		"password": "rahasia123",
		"name":     "Budi",
		"role":     "perawat",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sukses
	w = e.do(http.MethodPost, "/signup", "", gin.H{
		"email":    "budi@klinik.id",
		"password": "rahasia123",
		"name":     "Budi",
		"role":     models.RoleDokter,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		User models.User `json:"user"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "budi@klinik.id", resp.User.Email)
	assert.Equal(t, "Budi", resp.User.Name)
	assert.Equal(t, models.RoleDokter, resp.User.Role)

	// Email yang sama ditolak
	w = e.do(http.MethodPost, "/signup", "", gin.H{
		"email":    "budi@klinik.id",
		"password": "lainlagi456",
		"name":     "Budi Kedua",
		"role":     models.RolePasien,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t)
	e.registerUser(t, "ani@klinik.id", "Ani", models.RolePasien)

	// Password salah
	w := e.do(http.MethodPost, "/login", "", gin.H{
		"email":    "ani@klinik.id",
		"password": "salahtotal",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Email tidak terdaftar
	w = e.do(http.MethodPost, "/login", "", gin.H{
		"email":    "tidakada@klinik.id",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Sukses, token bisa dipakai
	w = e.do(http.MethodPost, "/login", "", gin.H{
		"email":    "ani@klinik.id",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, w, &resp)
	assert.Equal(t, models.RolePasien, resp.User.Role)

	w = e.do(http.MethodGet, "/user", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginSimpanTokenFCM(t *testing.T) {
	e := newTestEnv(t)
	e.registerUser(t, "ani@klinik.id", "Ani", models.RolePasien)

	w := e.do(http.MethodPost, "/login", "", gin.H{
		"email":     "ani@klinik.id",
		"password":  "rahasia123",
		"fcm_token": "device-token-xyz",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, w, &resp)

	// Token FCM harus tersimpan di profil
	w = e.do(http.MethodGet, "/user", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profil struct {
		User models.User `json:"user"`
	}
	decode(t, w, &profil)
	assert.Equal(t, "device-token-xyz", profil.User.FCMToken)
}

func TestGetCurrentUser(t *testing.T) {
	e := newTestEnv(t)
	token, userID := e.registerUser(t, "budi@klinik.id", "Budi", models.RoleDokter)

	// Token ngawur
	w := e.do(http.MethodGet, "/user", "token-ngawur", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Sukses
	w = e.do(http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	decode(t, w, &resp)
	assert.Equal(t, userID, resp.User.ID)

	// Token valid tapi profil sudah tidak ada di store -> 404
	require.NoError(t, e.kv.Delete(context.Background(), models.UserKey(userID)))
	w = e.do(http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
