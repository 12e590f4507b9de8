package handlers_test

import (
	"net/http"
	"testing"

	"klinik-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	e := newTestEnv(t)
	dokterToken, _ := e.registerUser(t, "dokter@klinik.id", "dr. Sari", models.RoleDokter)
	pasienToken, pasienID := e.registerUser(t, "pasien@klinik.id", "Budi", models.RolePasien)
	adminToken, _ := e.registerUser(t, "admin@klinik.id", "Admin Apotek", models.RoleAdmin)

	// Selain admin dilarang
	for _, token := range []string{dokterToken, pasienToken} {
		w := e.do(http.MethodGet, "/stats", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	}

	// Isi data: satu catatan pasien, dua tagihan, satu dibayar
	w := e.do(http.MethodPost, "/patient", dokterToken, gin.H{
		"userId": pasienID,
		"nama":   "Budi",
	})
	require.Equal(t, http.StatusOK, w.Code)

	lunas := createTransaction(t, e, adminToken, pasienID, "Budi", "Paracetamol", 50000)
	createTransaction(t, e, adminToken, pasienID, "Budi", "Vitamin C", 15000)

	w = e.do(http.MethodPut, "/transaction/"+lunas.ID, adminToken, gin.H{
		"status_pembayaran": models.StatusLunas,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalPasien         int     `json:"total_pasien"`
		TotalTransaksi      int     `json:"total_transaksi"`
		TransaksiBelumBayar int     `json:"transaksi_belum_bayar"`
		TotalPendapatan     float64 `json:"total_pendapatan"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 1, resp.TotalPasien)
	assert.Equal(t, 2, resp.TotalTransaksi)
	assert.Equal(t, 1, resp.TransaksiBelumBayar)
	assert.Equal(t, float64(50000), resp.TotalPendapatan)
}
