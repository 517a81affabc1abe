package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewLoginLimiter(5, 15*time.Minute)
	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "attempt %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"), "sixth attempt should be blocked")
}

func TestLoginLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewLoginLimiter(2, 15*time.Minute)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestLoginLimiterMinimumBurst(t *testing.T) {
	limiter := NewLoginLimiter(0, time.Minute)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{"remote addr with port", "203.0.113.7:54321", "", "203.0.113.7"},
		{"forwarded single", "127.0.0.1:1234", "198.51.100.9", "198.51.100.9"},
		{"forwarded chain uses first", "127.0.0.1:1234", "198.51.100.9, 10.0.0.1", "198.51.100.9"},
		{"forwarded with spaces", "127.0.0.1:1234", "  198.51.100.9 , 10.0.0.1", "198.51.100.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/auth/login", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.expected, ClientIP(r))
		})
	}
}
