package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"cashless/config"

	"github.com/pkg/errors"
)

// ErrMalformedBytes is returned when a wire value is neither valid hex nor base64.
var ErrMalformedBytes = errors.New("malformed byte string")

// Encoding names a wire representation of byte strings.
type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

// ByteCodec converts byte strings to and from their wire representation.
type ByteCodec struct {
	encoding Encoding
}

// NewByteCodec returns a codec for enc. An unknown or empty value falls back to hex.
func NewByteCodec(enc Encoding) *ByteCodec {
	if enc != EncodingBase64 {
		enc = EncodingHex
	}

	return &ByteCodec{encoding: enc}
}

// NewByteCodecFromConfig returns the codec selected by nfc.encoding.
func NewByteCodecFromConfig(cfg *config.Config) *ByteCodec {
	if cfg.NFC == nil {
		return NewByteCodec(EncodingHex)
	}

	return NewByteCodec(Encoding(cfg.NFC.Encoding))
}

// Encoding returns the representation the codec emits.
func (c *ByteCodec) Encoding() Encoding {
	return c.encoding
}

// Encode renders b as uppercase space-separated hex ("AA BB") or standard base64.
func (c *ByteCodec) Encode(b []byte) string {
	if c.encoding == EncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}

	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strings.ToUpper(hex.EncodeToString([]byte{v}))
	}

	return strings.Join(parts, " ")
}

// Decode parses s in the codec's representation. Hex may use spaces or colons between bytes.
func (c *ByteCodec) Decode(s string) ([]byte, error) {
	if c.encoding == EncodingBase64 {
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrap(ErrMalformedBytes, err.Error())
		}

		return b, nil
	}

	return DecodeHex(s)
}

// DecodeHex parses hex with optional space, colon or dash separators.
func DecodeHex(s string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", ":", "", "-", "").Replace(strings.TrimSpace(s))
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedBytes, err.Error())
	}

	return b, nil
}
