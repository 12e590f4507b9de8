package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"klinik-backend/internal/models"
	"klinik-backend/internal/store"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ListPatients mengambil semua catatan pasien (khusus dokter dan admin)
func (h *Handler) ListPatients(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if user.Role != models.RoleDokter && user.Role != models.RoleAdmin {
		utils.APIError(c, http.StatusForbidden, "Forbidden - Only dokter and admin can view all patients")
		return
	}

	raws, err := h.store.GetByPrefix(c.Request.Context(), "patient:")
	if err != nil {
		h.serverError(c, err, "Gagal scan catatan pasien")
		return
	}

	patients := make([]models.PatientRecord, 0, len(raws))
	for _, raw := range raws {
		var p models.PatientRecord
		if err := json.Unmarshal(raw, &p); err != nil {
			h.log.WithError(err).Warn("Dokumen pasien rusak, dilewati")
			continue
		}
		patients = append(patients, p)
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatient mengambil catatan satu pasien.
// Pasien hanya boleh lihat catatannya sendiri; dokter dan admin bebas.
func (h *Handler) GetPatient(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	userID := c.Param("userId")
	if user.ID != userID && user.Role != models.RoleDokter && user.Role != models.RoleAdmin {
		utils.APIError(c, http.StatusForbidden, "Forbidden")
		return
	}

	raw, err := h.store.Get(c.Request.Context(), models.PatientKey(userID))
	if errors.Is(err, store.ErrNotFound) {
		// Belum ada catatan bukan error: frontend render form kosong
		c.JSON(http.StatusOK, gin.H{"patient": nil})
		return
	}
	if err != nil {
		h.serverError(c, err, "Gagal mengambil catatan pasien")
		return
	}

	var patient models.PatientRecord
	if err := json.Unmarshal(raw, &patient); err != nil {
		h.serverError(c, err, "Dokumen pasien rusak")
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UpsertPatient membuat atau menimpa catatan pasien (khusus dokter).
// Timpa penuh: field opsional yang tidak dikirim kembali ke default,
// bukan dipertahankan dari catatan lama.
func (h *Handler) UpsertPatient(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if user.Role != models.RoleDokter {
		utils.APIError(c, http.StatusForbidden, "Forbidden - Only dokter can create/update patient records")
		return
	}

	var input models.UpsertPatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	record := models.PatientRecord{
		UserID:        input.UserID,
		Nama:          input.Nama,
		Umur:          input.Umur,
		Keluhan:       input.Keluhan,
		CatatanDokter: input.CatatanDokter,
		UpdatedAt:     time.Now().UTC(),
		UpdatedBy:     user.Name,
	}

	if err := h.store.Set(c.Request.Context(), models.PatientKey(input.UserID), record); err != nil {
		h.serverError(c, err, "Gagal menyimpan catatan pasien")
		return
	}

	h.log.Audit(user.ID, "upsert_patient", models.PatientKey(input.UserID), true)
	c.JSON(http.StatusOK, gin.H{"patient": record})
}
