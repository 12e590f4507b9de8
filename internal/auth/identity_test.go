package auth

import (
	"context"
	"testing"
	"time"

	"klinik-backend/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() *IdentityProvider {
	return NewIdentityProvider(store.NewMemory(), "test-secret")
}

func TestCreateUserAndLogin(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	id, err := p.CreateUser(ctx, "budi@klinik.id", "rahasia123")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Email yang sama tidak boleh didaftarkan dua kali
	_, err = p.CreateUser(ctx, "budi@klinik.id", "lainlagi456")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Login benar
	loginID, err := p.Login(ctx, "budi@klinik.id", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, id, loginID)

	// Password salah
	_, err = p.Login(ctx, "budi@klinik.id", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Email tidak terdaftar
	_, err = p.Login(ctx, "tidakada@klinik.id", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueAndResolveToken(t *testing.T) {
	p := newTestProvider()

	token, err := p.IssueToken("user-abc")
	require.NoError(t, err)

	userID, err := p.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", userID)
}

func TestResolveToken_Invalid(t *testing.T) {
	p := newTestProvider()

	_, err := p.ResolveToken("bukan-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token ditandatangani dengan secret yang berbeda
	other := NewIdentityProvider(store.NewMemory(), "secret-lain")
	token, err := other.IssueToken("user-abc")
	require.NoError(t, err)

	_, err = p.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveToken_Expired(t *testing.T) {
	p := newTestProvider()

	claims := jwt.MapClaims{
		"sub": "user-abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	require.NoError(t, err)

	_, err = p.ResolveToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveToken_MissingSubject(t *testing.T) {
	p := newTestProvider()

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	require.NoError(t, err)

	_, err = p.ResolveToken(noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
