package crypto

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCodec_Hex(t *testing.T) {
	codec := NewByteCodec(EncodingHex)

	assert.Equal(t, "0A FF 10", codec.Encode([]byte{0x0a, 0xff, 0x10}))
	assert.Equal(t, "", codec.Encode(nil))

	for _, in := range []string{"0A FF 10", "0aff10", "0A:FF:10", " 0a-ff-10 "} {
		got, err := codec.Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, []byte{0x0a, 0xff, 0x10}, got, in)
	}
}

func TestByteCodec_Base64(t *testing.T) {
	codec := NewByteCodec(EncodingBase64)
	assert.Equal(t, EncodingBase64, codec.Encoding())

	encoded := codec.Encode([]byte{1, 2, 3, 4})
	assert.Equal(t, "AQIDBA==", encoded)

	got, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestByteCodec_Malformed(t *testing.T) {
	_, err := NewByteCodec(EncodingHex).Decode("zz")
	assert.True(t, errors.Is(err, ErrMalformedBytes))

	_, err = NewByteCodec(EncodingHex).Decode("ABC")
	assert.True(t, errors.Is(err, ErrMalformedBytes))

	_, err = NewByteCodec(EncodingBase64).Decode("not base64!")
	assert.True(t, errors.Is(err, ErrMalformedBytes))
}

func TestNewByteCodec_DefaultsToHex(t *testing.T) {
	assert.Equal(t, EncodingHex, NewByteCodec("").Encoding())
	assert.Equal(t, EncodingHex, NewByteCodec("rot13").Encoding())
}
