package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.Get(ctx, "user:123")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Set(ctx, "user:123", map[string]string{"name": "Budi"})
	require.NoError(t, err)

	raw, err := s.Get(ctx, "user:123")
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Budi", doc["name"])

	require.NoError(t, s.Delete(ctx, "user:123"))
	_, err = s.Get(ctx, "user:123")
	assert.ErrorIs(t, err, ErrNotFound)

	// Delete key yang tidak ada tidak boleh error
	assert.NoError(t, s.Delete(ctx, "user:999"))
}

func TestMemoryStore_SetIsUpsert(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "patient:abc", map[string]string{"nama": "Ani"}))
	require.NoError(t, s.Set(ctx, "patient:abc", map[string]string{"nama": "Ani Baru"}))

	raw, err := s.Get(ctx, "patient:abc")
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Ani Baru", doc["nama"])

	vals, err := s.GetByPrefix(ctx, "patient:")
	require.NoError(t, err)
	assert.Len(t, vals, 1, "upsert tidak boleh menambah entry baru")
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "transaction:txn_1", map[string]int{"harga": 1000}))
	require.NoError(t, s.Set(ctx, "transaction:txn_2", map[string]int{"harga": 2000}))
	require.NoError(t, s.Set(ctx, "patient:xyz", map[string]string{"nama": "Citra"}))

	vals, err := s.GetByPrefix(ctx, "transaction:")
	require.NoError(t, err)
	assert.Len(t, vals, 2)

	vals, err = s.GetByPrefix(ctx, "user:")
	require.NoError(t, err)
	assert.Empty(t, vals)
}
