package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status pembayaran transaksi obat
const (
	StatusBelumBayar = "Belum Bayar"
	StatusLunas      = "Lunas"
)

// Transaction merepresentasikan dokumen 'transaction:<id>' di KV store
type Transaction struct {
	ID               string     `json:"id"`
	PasienID         string     `json:"pasien_id"`
	PasienNama       string     `json:"pasien_nama"`
	Obat             string     `json:"obat"`
	Harga            float64    `json:"harga"`
	StatusPembayaran string     `json:"status_pembayaran"`
	CreatedAt        time.Time  `json:"created_at"`
	CreatedBy        string     `json:"created_by,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
	UpdatedBy        string     `json:"updated_by,omitempty"`
}

// TransactionKey membentuk key KV untuk dokumen transaksi
func TransactionKey(id string) string {
	return "transaction:" + id
}

// NewTransactionID membuat ID transaksi format txn_<unixmilli>_<suffix acak>.
// Diasumsikan unik tanpa cek tabrakan (timestamp milidetik + 9 karakter acak).
func NewTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("txn_%d_%s", time.Now().UnixMilli(), suffix)
}

// Struct inputan admin saat membuat transaksi.
// Catatan: binding "required" pada Harga menolak nilai 0, harga nol
// diperlakukan sama dengan "tidak diisi".
type CreateTransactionInput struct {
	PasienID         string  `json:"pasien_id" binding:"required"`
	PasienNama       string  `json:"pasien_nama" binding:"required"`
	Obat             string  `json:"obat" binding:"required"`
	Harga            float64 `json:"harga" binding:"required"`
	StatusPembayaran string  `json:"status_pembayaran"`
}

// Struct inputan update parsial: hanya field yang dikirim yang diganti.
// Harga pakai pointer biar bisa bedakan "tidak dikirim" dengan "nol".
type UpdateTransactionInput struct {
	StatusPembayaran string   `json:"status_pembayaran"`
	Obat             string   `json:"obat"`
	Harga            *float64 `json:"harga"`
}
