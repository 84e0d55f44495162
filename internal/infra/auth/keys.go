// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"io"

	"cashless/config"
	"cashless/internal/errors"

	"golang.org/x/crypto/hkdf"
)

const derivedKeySize = 32

// Secrets holds the server-side keys used for token signing and password hashing.
type Secrets struct {
	Token    []byte
	Password []byte
}

// NewSecrets reads the configured keys. An empty key is derived from the master secret.
func NewSecrets(cfg *config.Config) (*Secrets, error) {
	token, err := resolveKey(cfg.SecretKey.Token, cfg.SecretKey.Master, "cashless/token-signing")
	if err != nil {
		return nil, errors.Wrap(err, "token secret")
	}
	password, err := resolveKey(cfg.SecretKey.Password, cfg.SecretKey.Master, "cashless/password-hashing")
	if err != nil {
		return nil, errors.Wrap(err, "password secret")
	}

	return &Secrets{Token: token, Password: password}, nil
}

func resolveKey(explicit, master, info string) ([]byte, error) {
	if explicit != "" {
		return []byte(explicit), nil
	}
	if master == "" {
		return nil, errors.New("secretKey.master must be set when a specific key is empty")
	}

	key := make([]byte, derivedKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(master), nil, []byte(info)), key); err != nil {
		return nil, errors.Wrap(err, "derive key")
	}

	return key, nil
}
