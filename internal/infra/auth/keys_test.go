package auth

import (
	"testing"

	"cashless/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecrets_DerivesFromMaster(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Master = "master-secret"

	secrets, err := NewSecrets(cfg)
	require.NoError(t, err)
	assert.Len(t, secrets.Token, derivedKeySize)
	assert.Len(t, secrets.Password, derivedKeySize)
	assert.NotEqual(t, secrets.Token, secrets.Password)

	again, err := NewSecrets(cfg)
	require.NoError(t, err)
	assert.Equal(t, secrets, again)
}

func TestNewSecrets_PrefersExplicitKeys(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "explicit-token"
	cfg.SecretKey.Password = "explicit-password"

	secrets, err := NewSecrets(cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("explicit-token"), secrets.Token)
	assert.Equal(t, []byte("explicit-password"), secrets.Password)
}

func TestNewSecrets_RequiresSomeKey(t *testing.T) {
	_, err := NewSecrets(&config.Config{})
	assert.Error(t, err)
}
