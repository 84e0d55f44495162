package crypto

import (
	"cashless/internal/domain/entity"
	"cashless/internal/domain/service"
)

const (
	// GenericNonceSize is the nonce length of generic (AES) cards.
	GenericNonceSize = 32
	// MifareNonceSize is the nonce length of DESFire (TDES) cards.
	MifareNonceSize = 8
)

type genericCipher struct{}

func (genericCipher) NonceSize() int { return GenericNonceSize }

func (genericCipher) Encrypt(key, data []byte) ([]byte, error) { return AESEncrypt(key, data) }

func (genericCipher) Decrypt(key, data []byte) ([]byte, error) { return AESDecrypt(key, data) }

func (genericCipher) SessionKey(_, rndA, rndB []byte) []byte {
	return Concat(rndA[0:4], rndB[0:4], rndA[4:8], rndB[4:8])
}

type mifareCipher struct{}

func (mifareCipher) NonceSize() int { return MifareNonceSize }

func (mifareCipher) Encrypt(key, data []byte) ([]byte, error) { return TDESEncrypt(key, data) }

func (mifareCipher) Decrypt(key, data []byte) ([]byte, error) { return TDESDecrypt(key, data) }

func (mifareCipher) SessionKey(key, rndA, rndB []byte) []byte {
	if !IsMultiKeyTDES(key) {
		return Concat(rndA[0:4], rndB[0:4])
	}

	return Concat(rndA[0:4], rndB[0:4], rndA[4:8], rndB[4:8])
}

// NewCardCiphers returns the cipher for every supported card type.
func NewCardCiphers() service.CardCiphers {
	return service.CardCiphers{
		entity.CardTypeGeneric:     genericCipher{},
		entity.CardTypeAsciiMifare: mifareCipher{},
	}
}
