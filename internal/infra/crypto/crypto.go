// Package crypto implements the block cipher modes spoken by NFC cards.
// Both families use CBC with an all-zero IV and zero padding so they stay
// interoperable with deployed card firmware.
package crypto

import (
	"bytes"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidKeySize is returned when key material has an unsupported length.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidLength is returned when ciphertext is not a whole number of blocks.
	ErrInvalidLength = errors.New("ciphertext is not a multiple of the block size")
)

// ZeroPad extends data with zero bytes up to a multiple of blockSize.
// Input that is already aligned, including empty input, is copied unchanged.
func ZeroPad(data []byte, blockSize int) []byte {
	n := len(data)
	if rem := n % blockSize; rem != 0 {
		n += blockSize - rem
	}
	out := make([]byte, n)
	copy(out, data)

	return out
}

// RotateLeft rotates b left by one byte.
func RotateLeft(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	out := make([]byte, 0, len(b))
	out = append(out, b[1:]...)

	return append(out, b[0])
}

// Concat joins byte slices into a fresh slice.
func Concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func zeroIV(size int) []byte {
	return make([]byte, size)
}
