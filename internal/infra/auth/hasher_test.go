package auth

import (
	"strings"
	"testing"

	"cashless/config"
	domainerrors "cashless/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Cheap parameters keep the suite fast.
var testArgon2 = config.Argon2Config{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher([]byte("pepper"), testArgon2)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))

	// Salts differ per hash
	again, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestArgon2Hasher_IsKeyed(t *testing.T) {
	hash, err := NewArgon2Hasher([]byte("pepper-a"), testArgon2).Hash("secret")
	require.NoError(t, err)

	assert.False(t, NewArgon2Hasher([]byte("pepper-b"), testArgon2).Check("secret", hash))
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost([]byte("pepper"), bcrypt.MinCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, NewBcryptHasherWithCost([]byte("other"), bcrypt.MinCost).Check("StrongPass123!", hash))
}

func TestHashers_RejectEmptyPassword(t *testing.T) {
	for _, hasher := range []interface{ Hash(string) (string, error) }{
		NewArgon2Hasher([]byte("pepper"), testArgon2),
		NewBcryptHasherWithCost([]byte("pepper"), bcrypt.MinCost),
	} {
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, domainerrors.ErrEmptyPassword)
	}
}

func TestPasswordHasher_VerifiesBothFormats(t *testing.T) {
	secrets := &Secrets{Password: []byte("pepper")}

	bcryptCfg := &config.Config{Auth: &config.AuthConfig{PasswordAlgorithm: "bcrypt", BcryptCost: bcrypt.MinCost, Argon2: testArgon2}}
	argonCfg := &config.Config{Auth: &config.AuthConfig{PasswordAlgorithm: "argon2id", BcryptCost: bcrypt.MinCost, Argon2: testArgon2}}

	legacy, err := NewPasswordHasher(bcryptCfg, secrets).Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(legacy, "$2"))

	current := NewPasswordHasher(argonCfg, secrets)
	assert.True(t, current.Check("secret", legacy))

	fresh, err := current.Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fresh, argon2Prefix))
	assert.True(t, current.Check("secret", fresh))
}
