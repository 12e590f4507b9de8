package models

import "time"

// Role user menentukan operasi apa saja yang boleh dia lakukan.
// Role ditentukan saat signup dan tidak bisa diubah lewat API.
const (
	RoleDokter = "dokter"
	RolePasien = "pasien"
	RoleAdmin  = "admin"
)

// ValidRole mengecek apakah string role dikenali sistem
func ValidRole(role string) bool {
	return role == RoleDokter || role == RolePasien || role == RoleAdmin
}

// User merepresentasikan dokumen 'user:<id>' di KV store
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	FCMToken  string    `json:"fcm_token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserKey membentuk key KV untuk dokumen user
func UserKey(id string) string {
	return "user:" + id
}

// Struct untuk menangkap input Signup
type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Struct untuk menangkap input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"`
}
