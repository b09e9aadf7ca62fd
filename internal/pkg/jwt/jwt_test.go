package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_RevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	svc.RevokeToken("revoked-token")

	assert.True(t, svc.IsTokenRevoked("revoked-token"))
	assert.False(t, svc.IsTokenRevoked("other-token"))
}

func TestJWTService_RevokeToken_SweepsExpiredEntries(t *testing.T) {
	// Tiny token lifetimes so the stale entry falls out of the
	// retention window almost immediately.
	svc := NewJWTService("test-secret", "10ms", "20ms")

	svc.RevokeToken("stale-token")
	time.Sleep(50 * time.Millisecond)
	svc.RevokeToken("fresh-token")

	assert.False(t, svc.IsTokenRevoked("stale-token"))
	assert.True(t, svc.IsTokenRevoked("fresh-token"))
}
