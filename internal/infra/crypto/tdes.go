package crypto

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"

	"github.com/pkg/errors"
)

// sendModeBlock swaps the enciphering direction of a block cipher.
// DESFire legacy authentication "encrypts" outgoing data by running the block
// decipher inside CBC, so the reader firmware expects exactly that.
type sendModeBlock struct {
	cipher.Block
}

func (b sendModeBlock) Encrypt(dst, src []byte) {
	b.Block.Decrypt(dst, src)
}

// TDESEncrypt enciphers data the way a DESFire reader does in send mode:
// CBC chaining over the TDES block decipher, zero IV and zero padding.
func TDESEncrypt(key, data []byte) ([]byte, error) {
	block, err := newTDES(key)
	if err != nil {
		return nil, err
	}

	buf := ZeroPad(data, des.BlockSize)
	cipher.NewCBCEncrypter(sendModeBlock{block}, zeroIV(des.BlockSize)).CryptBlocks(buf, buf)

	return buf, nil
}

// TDESDecrypt deciphers whole TDES-CBC blocks with a zero IV. Padding is left in place.
func TDESDecrypt(key, data []byte) ([]byte, error) {
	block, err := newTDES(key)
	if err != nil {
		return nil, err
	}
	if len(data)%des.BlockSize != 0 {
		return nil, ErrInvalidLength
	}

	buf := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, zeroIV(des.BlockSize)).CryptBlocks(buf, data)

	return buf, nil
}

// IsMultiKeyTDES reports whether key gives 2TDEA or 3TDEA strength. An 8-byte
// key and a 16-byte key with equal halves both collapse to single DES.
func IsMultiKeyTDES(key []byte) bool {
	switch len(key) {
	case 8:
		return false
	case 16:
		return !bytes.Equal(key[:8], key[8:])
	default:
		return true
	}
}

// ExpandTDESKey builds the 24-byte keying bundle: k becomes k‖k‖k,
// k1‖k2 becomes k1‖k2‖k1, and a 24-byte key is used as is.
func ExpandTDESKey(key []byte) ([]byte, error) {
	switch len(key) {
	case 8:
		return Concat(key, key, key), nil
	case 16:
		return Concat(key, key[:8]), nil
	case 24:
		return Concat(key), nil
	default:
		return nil, errors.Wrapf(ErrInvalidKeySize, "tdes key has %d bytes", len(key))
	}
}

func newTDES(key []byte) (cipher.Block, error) {
	expanded, err := ExpandTDESKey(key)
	if err != nil {
		return nil, err
	}
	block, err := des.NewTripleDESCipher(expanded)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return block, nil
}
