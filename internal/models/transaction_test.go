package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID(t *testing.T) {
	id := NewTransactionID()
	assert.True(t, strings.HasPrefix(id, "txn_"), "format harus txn_<timestamp>_<suffix>, dapat: %s", id)
	assert.Len(t, strings.SplitN(id, "_", 3), 3)

	// Suffix acak: dua ID beruntun tidak boleh sama
	assert.NotEqual(t, id, NewTransactionID())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleDokter))
	assert.True(t, ValidRole(RolePasien))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("perawat"))
	assert.False(t, ValidRole(""))
}
