package service

import "cashless/internal/domain/entity"

// CardCipher is the block cipher family a card type answers the NFC handshake with.
type CardCipher interface {
	// NonceSize is the length of rndA and rndB.
	NonceSize() int

	// Encrypt enciphers data for the card.
	Encrypt(key, data []byte) ([]byte, error)

	// Decrypt deciphers data sent by the card. Whole blocks are returned.
	Decrypt(key, data []byte) ([]byte, error)

	// SessionKey derives the session key from both nonces after a successful handshake.
	SessionKey(key, rndA, rndB []byte) []byte
}

// CardCiphers resolves the cipher for each supported card type.
type CardCiphers map[entity.CardType]CardCipher
