package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_PerIP(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)

	// Burst 2: dua request pertama lolos, ketiga ditahan
	l := limiter.GetLimiter("10.0.0.1")
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	// IP lain punya bucket sendiri
	assert.True(t, limiter.GetLimiter("10.0.0.2").Allow())

	// IP yang sama dapat limiter yang sama, bukan bucket baru
	assert.Same(t, l, limiter.GetLimiter("10.0.0.1"))
}
