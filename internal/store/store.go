package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound dikembalikan kalau key tidak ada di store
var ErrNotFound = errors.New("store: key not found")

// KV adalah kontrak penyimpanan dokumen JSON dengan key string.
// Semua entitas (user, patient, transaction) disimpan lewat interface ini,
// jadi backend-nya bisa ditukar (MySQL, Redis, atau in-memory untuk test).
type KV interface {
	// Get mengambil satu dokumen. ErrNotFound kalau key tidak ada.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set menyimpan dokumen (upsert: key yang sudah ada ditimpa penuh).
	Set(ctx context.Context, key string, value interface{}) error

	// Delete menghapus dokumen. Tidak error kalau key memang tidak ada.
	Delete(ctx context.Context, key string) error

	// GetByPrefix mengambil semua dokumen yang key-nya diawali prefix.
	// Urutan hasil tidak dijamin; scan penuh per namespace (O(n), tanpa index).
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}
