package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"klinik-backend/internal/models"
	"klinik-backend/internal/store"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// loadTransaction mengambil dan unmarshal satu dokumen transaksi.
// Kalau gagal, response error sudah ditulis.
func (h *Handler) loadTransaction(c *gin.Context, id string) (*models.Transaction, bool) {
	raw, err := h.store.Get(c.Request.Context(), models.TransactionKey(id))
	if errors.Is(err, store.ErrNotFound) {
		utils.APIError(c, http.StatusNotFound, "Transaction not found")
		return nil, false
	}
	if err != nil {
		h.serverError(c, err, "Gagal mengambil transaksi")
		return nil, false
	}

	var txn models.Transaction
	if err := json.Unmarshal(raw, &txn); err != nil {
		h.serverError(c, err, "Dokumen transaksi rusak")
		return nil, false
	}

	return &txn, true
}

// ListTransactions mengambil daftar transaksi obat.
// Admin dan dokter lihat semua; pasien hanya transaksi miliknya sendiri.
// Urutan mengikuti urutan scan store, sorting urusan frontend.
func (h *Handler) ListTransactions(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	raws, err := h.store.GetByPrefix(c.Request.Context(), "transaction:")
	if err != nil {
		h.serverError(c, err, "Gagal scan transaksi")
		return
	}

	transactions := make([]models.Transaction, 0, len(raws))
	for _, raw := range raws {
		var t models.Transaction
		if err := json.Unmarshal(raw, &t); err != nil {
			h.log.WithError(err).Warn("Dokumen transaksi rusak, dilewati")
			continue
		}

		// Filter untuk pasien: hanya tagihan atas namanya
		if user.Role == models.RolePasien && t.PasienID != user.ID {
			continue
		}
		transactions = append(transactions, t)
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// CreateTransaction membuat tagihan obat baru (khusus admin).
// Status default "Belum Bayar" kalau tidak dikirim.
func (h *Handler) CreateTransaction(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if user.Role != models.RoleAdmin {
		utils.APIError(c, http.StatusForbidden, "Forbidden - Only admin can create transactions")
		return
	}

	var input models.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	status := input.StatusPembayaran
	if status == "" {
		status = models.StatusBelumBayar
	}

	txn := models.Transaction{
		ID:               models.NewTransactionID(),
		PasienID:         input.PasienID,
		PasienNama:       input.PasienNama,
		Obat:             input.Obat,
		Harga:            input.Harga,
		StatusPembayaran: status,
		CreatedAt:        time.Now().UTC(),
		CreatedBy:        user.Name,
	}

	if err := h.store.Set(c.Request.Context(), models.TransactionKey(txn.ID), txn); err != nil {
		h.serverError(c, err, "Gagal menyimpan transaksi")
		return
	}

	h.log.Audit(user.ID, "create_transaction", models.TransactionKey(txn.ID), true)
	h.notifyNewBill(c.Request.Context(), txn)

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// notifyNewBill mengirim push notification ke pasien pemilik tagihan.
// Murni best-effort: pasien tanpa token FCM atau kirim gagal cuma dicatat.
func (h *Handler) notifyNewBill(ctx context.Context, txn models.Transaction) {
	raw, err := h.store.Get(ctx, models.UserKey(txn.PasienID))
	if err != nil {
		return
	}

	var pasien models.User
	if err := json.Unmarshal(raw, &pasien); err != nil {
		return
	}

	h.notifier.Send(ctx, pasien.FCMToken,
		"Tagihan Obat Baru",
		fmt.Sprintf("Tagihan %s sebesar Rp%.0f menunggu pembayaran", txn.Obat, txn.Harga),
		map[string]string{"transaction_id": txn.ID},
	)
}

// UpdateTransaction mengubah sebagian field transaksi (khusus admin).
// Hanya field yang dikirim yang diganti, sisanya dipertahankan.
func (h *Handler) UpdateTransaction(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if user.Role != models.RoleAdmin {
		utils.APIError(c, http.StatusForbidden, "Forbidden - Only admin can update transactions")
		return
	}

	txn, ok := h.loadTransaction(c, c.Param("id"))
	if !ok {
		return
	}

	var input models.UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Read-modify-write tanpa lock: dua admin yang update bersamaan bisa
	// saling timpa (lost update). Kontrak store tidak menyediakan CAS.
	if input.StatusPembayaran != "" {
		txn.StatusPembayaran = input.StatusPembayaran
	}
	if input.Obat != "" {
		txn.Obat = input.Obat
	}
	if input.Harga != nil {
		txn.Harga = *input.Harga
	}

	now := time.Now().UTC()
	txn.UpdatedAt = &now
	txn.UpdatedBy = user.Name

	if err := h.store.Set(c.Request.Context(), models.TransactionKey(txn.ID), txn); err != nil {
		h.serverError(c, err, "Gagal menyimpan transaksi")
		return
	}

	h.log.Audit(user.ID, "update_transaction", models.TransactionKey(txn.ID), true)
	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// DeleteTransaction menghapus transaksi (khusus admin)
func (h *Handler) DeleteTransaction(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if user.Role != models.RoleAdmin {
		utils.APIError(c, http.StatusForbidden, "Forbidden - Only admin can delete transactions")
		return
	}

	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), models.TransactionKey(id)); err != nil {
		h.serverError(c, err, "Gagal menghapus transaksi")
		return
	}

	h.log.Audit(user.ID, "delete_transaction", models.TransactionKey(id), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
