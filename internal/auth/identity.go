package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"klinik-backend/internal/store"
	"klinik-backend/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("auth: email sudah terdaftar")
	ErrInvalidCredentials = errors.New("auth: email atau password salah")
	ErrInvalidToken       = errors.New("auth: token tidak valid")
)

// credential disimpan di KV dengan key 'auth:<email>'
type credential struct {
	UserID       string `json:"user_id"`
	PasswordHash string `json:"password_hash"`
}

func credentialKey(email string) string {
	return "auth:" + email
}

// IdentityProvider mengurus kredensial dan bearer token.
// Dibuat SEKALI di main lalu di-inject ke middleware dan handler,
// jangan dibikin singleton package-level.
type IdentityProvider struct {
	kv       store.KV
	secret   []byte
	tokenTTL time.Duration
}

func NewIdentityProvider(kv store.KV, secret string) *IdentityProvider {
	return &IdentityProvider{
		kv:       kv,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour, // Token berlaku 24 jam
	}
}

// CreateUser mendaftarkan kredensial baru dan mengembalikan user id
func (p *IdentityProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	// 1. Cek email belum dipakai
	if _, err := p.kv.Get(ctx, credentialKey(email)); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	// 2. Hash password, jangan pernah simpan plaintext
	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	// 3. Simpan kredensial
	id := uuid.NewString()
	cred := credential{UserID: id, PasswordHash: hash}
	if err := p.kv.Set(ctx, credentialKey(email), cred); err != nil {
		return "", err
	}

	return id, nil
}

// Login memverifikasi email+password dan mengembalikan user id
func (p *IdentityProvider) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := p.kv.Get(ctx, credentialKey(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	var cred credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return "", err
	}

	if !utils.CheckPassword(password, cred.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return cred.UserID, nil
}

// IssueToken membuat JWT HS256 berisi user id di claim 'sub'
func (p *IdentityProvider) IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(p.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ResolveToken memverifikasi token dan mengembalikan user id pemiliknya.
// Token rusak, salah tanda tangan, atau kedaluwarsa semuanya jadi ErrInvalidToken.
func (p *IdentityProvider) ResolveToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Algoritma harus HMAC, tolak yang lain
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
