package handlers

import (
	"net/http"
	"time"

	"klinik-backend/internal/models"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PayTransaction membuat link pembayaran Midtrans Snap untuk satu tagihan.
// Boleh dipanggil admin, atau pasien untuk tagihannya sendiri.
func (h *Handler) PayTransaction(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	txn, ok := h.loadTransaction(c, c.Param("id"))
	if !ok {
		return
	}

	ownBill := user.Role == models.RolePasien && txn.PasienID == user.ID
	if user.Role != models.RoleAdmin && !ownBill {
		utils.APIError(c, http.StatusForbidden, "Forbidden")
		return
	}

	if txn.StatusPembayaran == models.StatusLunas {
		utils.APIError(c, http.StatusBadRequest, "Transaksi sudah lunas")
		return
	}

	if h.payments == nil {
		utils.APIError(c, http.StatusServiceUnavailable, "Payment gateway belum dikonfigurasi")
		return
	}

	snapToken, redirectURL, err := h.payments.CreatePaymentLink(txn, user)
	if err != nil {
		h.serverError(c, err, "Midtrans error saat membuat transaksi Snap")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snap_token":   snapToken,
		"redirect_url": redirectURL,
	})
}

// Struct sederhana untuk menangkap body notifikasi Midtrans.
// Midtrans kirim banyak field, kita cuma butuh ini.
type midtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
}

// HandlePaymentNotification webhook dari Midtrans (tanpa bearer token).
// settlement atau capture+accept berarti pembayaran sukses -> tandai Lunas.
func (h *Handler) HandlePaymentNotification(c *gin.Context) {
	var notification midtransNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	paid := false
	switch notification.TransactionStatus {
	case "capture":
		paid = notification.FraudStatus == "accept"
	case "settlement":
		paid = true
	}

	h.log.WithFields(map[string]interface{}{
		"order_id":           notification.OrderID,
		"transaction_status": notification.TransactionStatus,
		"fraud_status":       notification.FraudStatus,
		"paid":               paid,
	}).Info("Notifikasi Midtrans diterima")

	// deny/cancel/expire/pending: status tagihan dibiarkan Belum Bayar,
	// admin bisa terbitkan pembayaran ulang
	if !paid {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	txn, ok := h.loadTransaction(c, notification.OrderID)
	if !ok {
		return
	}

	now := time.Now().UTC()
	txn.StatusPembayaran = models.StatusLunas
	txn.UpdatedAt = &now
	txn.UpdatedBy = "midtrans"

	if err := h.store.Set(c.Request.Context(), models.TransactionKey(txn.ID), txn); err != nil {
		h.serverError(c, err, "Gagal update status pembayaran")
		return
	}

	h.log.Audit("midtrans", "settle_transaction", models.TransactionKey(txn.ID), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
