package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

// AESKeySize is the key length of the generic card cipher (AES-256).
const AESKeySize = 32

// AESEncrypt enciphers data with AES-256-CBC, zero IV and zero padding.
func AESEncrypt(key, data []byte) ([]byte, error) {
	block, err := newAES(key)
	if err != nil {
		return nil, err
	}

	buf := ZeroPad(data, aes.BlockSize)
	cipher.NewCBCEncrypter(block, zeroIV(aes.BlockSize)).CryptBlocks(buf, buf)

	return buf, nil
}

// AESDecrypt deciphers whole AES-256-CBC blocks. Padding is left in place.
func AESDecrypt(key, data []byte) ([]byte, error) {
	block, err := newAES(key)
	if err != nil {
		return nil, err
	}
	if len(data)%aes.BlockSize != 0 {
		return nil, ErrInvalidLength
	}

	buf := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, zeroIV(aes.BlockSize)).CryptBlocks(buf, data)

	return buf, nil
}

func newAES(key []byte) (cipher.Block, error) {
	if len(key) != AESKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "aes key has %d bytes", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return block, nil
}
