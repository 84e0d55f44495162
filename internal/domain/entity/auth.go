// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrDuplicateAuthMethodKind is returned when an account holds two methods of the same kind.
	ErrDuplicateAuthMethodKind = errors.New("account holds more than one authentication method of a kind")
	// ErrInvalidAuthMethod is returned when a method is missing its identifier or has an unknown card type.
	ErrInvalidAuthMethod = errors.New("authentication method is incomplete")
)

// AuthMethodKind discriminates the AuthMethod variants.
type AuthMethodKind string

const (
	AuthMethodPassword AuthMethodKind = "password"
	AuthMethodNfc      AuthMethodKind = "nfc"
	AuthMethodBarcode  AuthMethodKind = "barcode"
)

// AuthMethod is one way of identifying an account. The set of variants is closed:
// *PasswordAuth, *NfcAuth and *BarcodeAuth.
type AuthMethod interface {
	Kind() AuthMethodKind
	// Identifier is the globally unique handle used to look the account up.
	Identifier() string
	Validate() error

	isAuthMethod()
}

// LookupKey combines kind and identifier into the globally unique index value.
func LookupKey(kind AuthMethodKind, identifier string) string {
	return string(kind) + ":" + identifier
}

// PasswordAuth is a username and a keyed password hash.
type PasswordAuth struct {
	Username     string
	PasswordHash string
}

func (*PasswordAuth) Kind() AuthMethodKind { return AuthMethodPassword }
func (p *PasswordAuth) Identifier() string { return p.Username }
func (*PasswordAuth) isAuthMethod()        {}

func (p *PasswordAuth) Validate() error {
	if strings.TrimSpace(p.Username) == "" || p.PasswordHash == "" {
		return ErrInvalidAuthMethod
	}

	return nil
}

// CardType selects the cipher family of the card handshake.
type CardType string

const (
	// CardTypeGeneric cards answer with AES-256 and 32-byte nonces.
	CardTypeGeneric CardType = "generic"
	// CardTypeAsciiMifare cards answer DESFire-style with Triple-DES and 8-byte nonces.
	CardTypeAsciiMifare CardType = "ascii_mifare"
)

// IsValid checks if the CardType is a valid value.
func (c CardType) IsValid() bool {
	switch c {
	case CardTypeGeneric, CardTypeAsciiMifare:
		return true
	default:
		return false
	}
}

// NfcAuth binds a physical card to the account. Secret is the card key;
// when empty, the reader key configured for the card type is used.
type NfcAuth struct {
	Name     string
	CardID   string // canonical form, see CardIDFromBytes
	CardType CardType
	Secret   []byte
}

func (*NfcAuth) Kind() AuthMethodKind { return AuthMethodNfc }
func (n *NfcAuth) Identifier() string { return n.CardID }
func (*NfcAuth) isAuthMethod()        {}

func (n *NfcAuth) Validate() error {
	if n.CardID == "" || !n.CardType.IsValid() {
		return ErrInvalidAuthMethod
	}

	return nil
}

// BarcodeAuth is a public tab code. Possession of the code identifies the account.
type BarcodeAuth struct {
	Code string
}

func (*BarcodeAuth) Kind() AuthMethodKind { return AuthMethodBarcode }
func (b *BarcodeAuth) Identifier() string { return b.Code }
func (*BarcodeAuth) isAuthMethod()        {}

func (b *BarcodeAuth) Validate() error {
	if strings.TrimSpace(b.Code) == "" {
		return ErrInvalidAuthMethod
	}

	return nil
}

// CardIDFromBytes renders a raw card UID in its canonical stored form (uppercase hex, no separators).
func CardIDFromBytes(raw []byte) string {
	return strings.ToUpper(hex.EncodeToString(raw))
}
