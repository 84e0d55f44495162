package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a PasswordHasher using bcrypt over a keyed pre-hash.
type bcryptHasher struct {
	pepper []byte
	cost   int
}

// NewBcryptHasherWithCost is the constructor for bcryptHasher.
func NewBcryptHasherWithCost(pepper []byte, cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{pepper: pepper, cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrEmptyPassword
	}
	bytes, err := bcrypt.GenerateFromPassword(h.prehash(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.prehash(password))
	// err is nil if the password and hash match.
	return err == nil
}

// prehash keys the password with the server secret. The base64 form stays below bcrypt's 72-byte limit.
func (h *bcryptHasher) prehash(password string) []byte {
	return []byte(base64.RawStdEncoding.EncodeToString(keyedDigest(h.pepper, password)))
}

func keyedDigest(pepper []byte, password string) []byte {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
