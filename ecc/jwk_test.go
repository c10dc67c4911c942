package ecc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWKRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := NewPrivateKeyFromLogin("test", "owner", "test")
	require.NoError(err)
	pub := key.PublicKey()

	jwk, err := pub.JWK()
	require.NoError(err)
	assert.Equal("EC", jwk.KeyType)
	assert.Equal("secp256k1", jwk.Curve)
	// 32-byte coordinates are 43 characters of unpadded base64url
	assert.Equal(43, len(jwk.X))
	assert.Equal(43, len(jwk.Y))

	blob, err := json.Marshal(jwk)
	require.NoError(err)

	parsed, err := ParsePublicKeyJWKBytes(blob)
	require.NoError(err)
	assert.True(pub.Equal(parsed))
}

func TestJWKRejectsForeignKeys(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := GeneratePrivateKey()
	require.NoError(err)
	jwk, err := key.PublicKey().JWK()
	require.NoError(err)

	rsa := *jwk
	rsa.KeyType = "RSA"
	_, err = ParsePublicKeyJWK(rsa)
	assert.Error(err)

	p256 := *jwk
	p256.Curve = "P-256"
	_, err = ParsePublicKeyJWK(p256)
	assert.Error(err)

	truncated := *jwk
	truncated.Y = truncated.Y[:42]
	_, err = ParsePublicKeyJWK(truncated)
	assert.Error(err)

	garbage := *jwk
	garbage.X = "!!!not-base64url!!!"
	_, err = ParsePublicKeyJWK(garbage)
	assert.Error(err)

	_, err = ParsePublicKeyJWKBytes([]byte("{not json"))
	assert.Error(err)
}

func TestJWKRejectsOffCurvePoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := NewPrivateKeyFromLogin("test", "owner", "test")
	require.NoError(err)
	jwk, err := key.PublicKey().JWK()
	require.NoError(err)

	// swap the coordinates; (y, x) is not a curve point for this key
	swapped := *jwk
	swapped.X, swapped.Y = jwk.Y, jwk.X
	_, err = ParsePublicKeyJWK(swapped)
	assert.ErrorIs(err, ErrInvalidPublicKey)
}
