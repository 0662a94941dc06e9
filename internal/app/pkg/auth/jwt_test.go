package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Generate(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).Generate(1, "bob")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	// the constructor rejects non-positive ttls, so build one directly
	svc := &JWTService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := svc.Generate(1, "bob")
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
