package handlers

import (
	"encoding/json"
	"net/http"

	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetStats menampilkan ringkasan untuk dashboard admin:
// jumlah pasien, jumlah transaksi, yang belum dibayar, dan total pendapatan.
// Semuanya dihitung dari prefix scan — dataset kecil, tidak perlu index.
func (h *Handler) GetStats(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if user.Role != models.RoleAdmin {
		utils.APIError(c, http.StatusForbidden, "Forbidden - Only admin can view stats")
		return
	}

	patients, err := h.store.GetByPrefix(c.Request.Context(), "patient:")
	if err != nil {
		h.serverError(c, err, "Gagal scan catatan pasien")
		return
	}

	raws, err := h.store.GetByPrefix(c.Request.Context(), "transaction:")
	if err != nil {
		h.serverError(c, err, "Gagal scan transaksi")
		return
	}

	var belumBayar int
	var pendapatan float64
	for _, raw := range raws {
		var t models.Transaction
		if err := json.Unmarshal(raw, &t); err != nil {
			continue
		}
		if t.StatusPembayaran == models.StatusLunas {
			pendapatan += t.Harga
		} else {
			belumBayar++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_pasien":          len(patients),
		"total_transaksi":       len(raws),
		"transaksi_belum_bayar": belumBayar,
		"total_pendapatan":      pendapatan,
	})
}
