package crypto

import (
	"bytes"
	"crypto/des"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroPad(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		blockSize int
		wantLen   int
	}{
		{"Empty input", []byte{}, 8, 0},
		{"Aligned input", bytes.Repeat([]byte{1}, 16), 8, 16},
		{"Short input", []byte{1, 2, 3}, 8, 8},
		{"One over", bytes.Repeat([]byte{1}, 17), 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ZeroPad(tt.input, tt.blockSize)
			assert.Len(t, out, tt.wantLen)
			assert.Equal(t, tt.input, out[:len(tt.input)])
			for _, b := range out[len(tt.input):] {
				assert.Zero(t, b)
			}
		})
	}
}

func TestRotateLeft(t *testing.T) {
	assert.Equal(t, []byte{2, 3, 4, 1}, RotateLeft([]byte{1, 2, 3, 4}))
	assert.Equal(t, []byte{9}, RotateLeft([]byte{9}))
	assert.Empty(t, RotateLeft(nil))

	input := []byte{1, 2}
	_ = RotateLeft(input)
	assert.Equal(t, []byte{1, 2}, input, "input must not be modified")
}

func TestAES_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, AESKeySize)
	plain := bytes.Repeat([]byte{0xA5}, 64)

	ct, err := AESEncrypt(key, plain)
	require.NoError(t, err)
	assert.Len(t, ct, 64)
	assert.NotEqual(t, plain, ct)

	pt, err := AESDecrypt(key, ct)
	require.NoError(t, err)
	assert.Equal(t, plain, pt)
}

func TestAES_DecryptKeepsTrailingZeroBytes(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, AESKeySize)
	nonce := make([]byte, GenericNonceSize)
	nonce[0] = 0x7F // last byte stays 0x00

	ct, err := AESEncrypt(key, nonce)
	require.NoError(t, err)

	pt, err := AESDecrypt(key, ct)
	require.NoError(t, err)
	assert.Equal(t, nonce, pt)
}

func TestAES_Errors(t *testing.T) {
	_, err := AESEncrypt([]byte("short"), []byte("data"))
	assert.True(t, errors.Is(err, ErrInvalidKeySize))

	_, err = AESDecrypt(bytes.Repeat([]byte{1}, AESKeySize), []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestExpandTDESKey(t *testing.T) {
	k1 := bytes.Repeat([]byte{0x11}, 8)
	k2 := bytes.Repeat([]byte{0x22}, 8)
	k3 := bytes.Repeat([]byte{0x33}, 8)

	tests := []struct {
		name    string
		key     []byte
		want    []byte
		wantErr bool
	}{
		{"Single key", k1, Concat(k1, k1, k1), false},
		{"Two keys", Concat(k1, k2), Concat(k1, k2, k1), false},
		{"Three keys", Concat(k1, k2, k3), Concat(k1, k2, k3), false},
		{"Invalid size", []byte{1, 2, 3}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTDESKey(tt.key)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidKeySize))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsMultiKeyTDES(t *testing.T) {
	k1 := bytes.Repeat([]byte{0x11}, 8)
	k2 := bytes.Repeat([]byte{0x22}, 8)

	assert.False(t, IsMultiKeyTDES(k1))
	assert.False(t, IsMultiKeyTDES(Concat(k1, k1)))
	assert.True(t, IsMultiKeyTDES(Concat(k1, k2)))
	assert.True(t, IsMultiKeyTDES(Concat(k1, k2, k1)))
}

func TestTDESEncrypt_UsesBlockDecipher(t *testing.T) {
	key := []byte("0123456789abcdef")
	expanded, err := ExpandTDESKey(key)
	require.NoError(t, err)
	block, err := des.NewTripleDESCipher(expanded)
	require.NoError(t, err)

	p1 := []byte("ABCDEFGH")
	p2 := []byte("IJKLMNOP")

	ct, err := TDESEncrypt(key, Concat(p1, p2))
	require.NoError(t, err)
	require.Len(t, ct, 16)

	// c1 = D(p1), c2 = D(p2 ^ c1)
	c1 := make([]byte, 8)
	block.Decrypt(c1, p1)
	assert.Equal(t, c1, ct[:8])

	x := make([]byte, 8)
	for i := range x {
		x[i] = p2[i] ^ c1[i]
	}
	c2 := make([]byte, 8)
	block.Decrypt(c2, x)
	assert.Equal(t, c2, ct[8:])
}

func TestTDESDecrypt_InvertsCardEncipher(t *testing.T) {
	key := []byte("0123456789abcdef")
	expanded, err := ExpandTDESKey(key)
	require.NoError(t, err)
	block, err := des.NewTripleDESCipher(expanded)
	require.NoError(t, err)

	rndB := []byte{1, 2, 3, 4, 5, 6, 7, 0}
	ek := make([]byte, 8)
	block.Encrypt(ek, rndB)

	got, err := TDESDecrypt(key, ek)
	require.NoError(t, err)
	assert.Equal(t, rndB, got)
}

func TestTDES_SingleKeyEqualsDES(t *testing.T) {
	key := []byte("8bytekey")
	plain := []byte("payload!")

	single, err := des.NewCipher(key)
	require.NoError(t, err)
	want := make([]byte, 8)
	single.Decrypt(want, plain)

	got, err := TDESEncrypt(key, plain)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTDES_Errors(t *testing.T) {
	_, err := TDESEncrypt([]byte{1, 2, 3}, []byte("data"))
	assert.True(t, errors.Is(err, ErrInvalidKeySize))

	_, err = TDESDecrypt(bytes.Repeat([]byte{1}, 16), []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrInvalidLength))
}
