package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"cashless/config"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/service"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix   = "$argon2id$"
	argon2SaltSize = 16
)

// argon2Hasher is a PasswordHasher using argon2id over a keyed pre-hash.
// Hashes are encoded as $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>.
type argon2Hasher struct {
	pepper []byte
	params config.Argon2Config
}

// NewArgon2Hasher is the constructor for argon2Hasher.
func NewArgon2Hasher(pepper []byte, params config.Argon2Config) service.PasswordHasher {
	return &argon2Hasher{pepper: pepper, params: params}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrEmptyPassword
	}

	salt := make([]byte, argon2SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	p := h.params
	key := argon2.IDKey(keyedDigest(h.pepper, password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix, argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Check(password, hash string) bool {
	if password == "" {
		return false
	}

	p, salt, want, ok := decodeArgon2(hash)
	if !ok {
		return false
	}
	got := argon2.IDKey(keyedDigest(h.pepper, password), salt, p.Time, p.Memory, p.Threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1
}

func decodeArgon2(hash string) (config.Argon2Config, []byte, []byte, bool) {
	var p config.Argon2Config

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, false
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, false
	}

	return p, salt, key, true
}
