package base58check

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WIF of the scalar 1 with the shared 0x80 version byte, a fixture every
// bitcoin-derived codec agrees on.
const wifOfOne = "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf"

func scalarOne() []byte {
	payload := make([]byte, 32)
	payload[31] = 0x01
	return payload
}

func TestEncodeGolden(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(wifOfOne, Encode(0x80, scalarOne()))
}

func TestDecodeGolden(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	version, payload, err := Decode(wifOfOne)
	require.NoError(err)
	assert.Equal(byte(0x80), version)
	assert.Equal(hex.EncodeToString(scalarOne()), hex.EncodeToString(payload))
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, payload := range [][]byte{
		{},
		{0x00},
		{0xff, 0x00, 0xff},
		[]byte("some arbitrary payload bytes"),
	} {
		enc := Encode(0x35, payload)
		version, decoded, err := Decode(enc)
		require.NoError(err)
		assert.Equal(byte(0x35), version)
		assert.Equal(payload, decoded[:len(payload)])
		assert.Equal(len(payload), len(decoded))
	}
}

func TestDecodeCorrupt(t *testing.T) {
	assert := assert.New(t)

	// last character altered within the alphabet
	corrupt := wifOfOne[:len(wifOfOne)-1] + "g"
	_, _, err := Decode(corrupt)
	assert.ErrorIs(err, ErrChecksumMismatch)

	// character outside the Base58 alphabet
	bad := "0" + wifOfOne[1:]
	_, _, err = Decode(bad)
	assert.ErrorIs(err, ErrInvalidEncoding)

	// too short to hold version byte plus checksum
	for _, s := range []string{"", "2g", "1111"} {
		_, _, err = Decode(s)
		assert.ErrorIs(err, ErrInvalidEncoding, s)
	}
}

func TestRipemdVariantRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	payload := []byte("graphene style payload")
	enc := EncodeRipemd160(payload, "K1")

	decoded, err := DecodeRipemd160(enc, "K1")
	require.NoError(err)
	assert.Equal(payload, decoded)

	// checksum binds the suffix even though the suffix is not encoded
	_, err = DecodeRipemd160(enc, "")
	assert.ErrorIs(err, ErrChecksumMismatch)

	corrupt := []byte(enc)
	if corrupt[3] == '1' {
		corrupt[3] = '2'
	} else {
		corrupt[3] = '1'
	}
	_, err = DecodeRipemd160(string(corrupt), "K1")
	assert.Error(err)
}

func TestRipemdVariantRejectsShortInput(t *testing.T) {
	assert := assert.New(t)

	_, err := DecodeRipemd160("2g", "K1")
	assert.ErrorIs(err, ErrInvalidEncoding)

	_, err = DecodeRipemd160("5jix!", "")
	assert.ErrorIs(err, ErrInvalidEncoding)
}
