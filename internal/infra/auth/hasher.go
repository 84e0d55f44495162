package auth

import (
	"strings"

	"cashless/config"
	"cashless/internal/domain/service"
)

const algorithmBcrypt = "bcrypt"

// passwordHasher hashes with the configured algorithm and verifies either
// format, so switching algorithms does not lock out existing accounts.
type passwordHasher struct {
	primary service.PasswordHasher
	argon2  service.PasswordHasher
	bcrypt  service.PasswordHasher
}

// NewPasswordHasher builds the hasher selected by auth.passwordAlgorithm.
func NewPasswordHasher(cfg *config.Config, secrets *Secrets) service.PasswordHasher {
	h := &passwordHasher{
		argon2: NewArgon2Hasher(secrets.Password, cfg.Auth.Argon2),
		bcrypt: NewBcryptHasherWithCost(secrets.Password, cfg.Auth.BcryptCost),
	}

	h.primary = h.argon2
	if strings.EqualFold(cfg.Auth.PasswordAlgorithm, algorithmBcrypt) {
		h.primary = h.bcrypt
	}

	return h
}

func (h *passwordHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *passwordHasher) Check(password, hash string) bool {
	if strings.HasPrefix(hash, argon2Prefix) {
		return h.argon2.Check(password, hash)
	}

	return h.bcrypt.Check(password, hash)
}
