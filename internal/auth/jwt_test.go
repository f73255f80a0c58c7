package auth

import (
	"testing"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	require.Error(t, err)
}

func TestManager_MintAndParse(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	user := &domain.User{
		ID:    "u1",
		Email: "alice@example.com",
		Role:  domain.RoleAdmin,
	}

	token, err := m.Mint(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	m1, err := NewManager("secret-one", time.Hour)
	require.NoError(t, err)
	m2, err := NewManager("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := m1.Mint(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = m2.Parse(token)
	assert.Error(t, err)
}

func TestManager_Parse_Expired(t *testing.T) {
	m, err := NewManager("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := m.Mint(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Parse("not-a-jwt")
	assert.Error(t, err)
}
