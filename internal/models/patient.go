package models

import "time"

// PatientRecord merepresentasikan dokumen 'patient:<userId>' di KV store.
// Maksimal satu catatan per pasien; key-nya adalah user id pasien itu sendiri.
type PatientRecord struct {
	UserID        string    `json:"userId"`
	Nama          string    `json:"nama"`
	Umur          int       `json:"umur"`
	Keluhan       string    `json:"keluhan"`
	CatatanDokter string    `json:"catatan_dokter"`
	UpdatedAt     time.Time `json:"updated_at"`
	UpdatedBy     string    `json:"updated_by"`
}

// PatientKey membentuk key KV untuk catatan pasien
func PatientKey(userID string) string {
	return "patient:" + userID
}

// Struct inputan dokter saat membuat/mengubah catatan pasien.
// Field opsional yang tidak dikirim di-default (bukan dipertahankan):
// tulis ulang berarti timpa penuh dokumen lama.
type UpsertPatientInput struct {
	UserID        string `json:"userId" binding:"required"`
	Nama          string `json:"nama" binding:"required"`
	Umur          int    `json:"umur"`
	Keluhan       string `json:"keluhan"`
	CatatanDokter string `json:"catatan_dokter"`
}
