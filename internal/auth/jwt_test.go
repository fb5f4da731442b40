package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Generate(userID, "CUSTOMER")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "CUSTOMER", claims.Role)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate(uuid.New(), "CUSTOMER")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	signer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, err := signer.Generate(uuid.New(), "ADMIN")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTManager_Garbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	_, err := m.Verify("not.a.token")
	require.Error(t, err)
}
