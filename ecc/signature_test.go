package ecc

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignDeterministic(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := NewPrivateKeyFromLogin("test", "owner", "test")
	require.NoError(err)
	digest := sha256.Sum256([]byte("a fixed message"))

	one, err := key.Sign(digest[:])
	require.NoError(err)
	two, err := key.Sign(digest[:])
	require.NoError(err)
	assert.Equal(one.Bytes(), two.Bytes())
	assert.True(one.Equal(two))
}

// RFC 6979 nonces make the whole signature a pure function of (key, digest),
// so the exact bytes can be pinned against the other implementations on the
// network.
func TestSignGoldenVector(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := NewPrivateKeyFromLogin("test", "owner", "test")
	require.NoError(err)
	digest := sha256.Sum256([]byte("helloworld"))

	sig, err := key.Sign(digest[:])
	require.NoError(err)

	assert.Equal(
		"1f09d3a3db83f0b26d609927fac7225b4b687a01987ff01bfe0ed5c298a671f1986513af26a070e61eafc638a92354566f660b5a24f6f27ddbc8469b0ea03ffdd5",
		hex.EncodeToString(sig.Bytes()),
	)
	assert.Equal(
		"JvYLntg1nfTLFTMX9mXGJB95WnbceLKwcvWTc16tVVCX1eCvFKXAtcuRs8xtRqMhH8oHFYAoWUYg8n9iV5nuLxtHojE2eo",
		sig.String(),
	)

	recovered, err := sig.RecoverPublicKey(digest[:])
	require.NoError(err)
	assert.Equal("STM5jixkNBqJXNtX9vy2GjaqpX2d5jXrcjRXgh1WU5fXZhnDJrLM8", recovered.String())
}

func TestSignDigestSizeGuard(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := GeneratePrivateKey()
	require.NoError(err)

	_, err = key.Sign([]byte("not a digest"))
	assert.Error(err)

	sig, err := key.SignMessage([]byte("not a digest"))
	require.NoError(err)
	_, err = sig.RecoverPublicKey([]byte("not a digest"))
	assert.Error(err)
}

// a large number of sign/verify/recover cycles, to hit high-S raw signatures
// and both recovery parities
func TestCanonicalMany(t *testing.T) {
	assert := assert.New(t)

	msg := make([]byte, 256)

	for i := 0; i < 128; i++ {
		priv, err := GeneratePrivateKey()
		assert.NoError(err)
		pub := priv.PublicKey()

		_, err = rand.Read(msg)
		assert.NoError(err)
		digest := sha256.Sum256(msg)

		sig, err := priv.Sign(digest[:])
		assert.NoError(err)

		assert.True(sig.IsLowS())
		assert.True(sig.IsCompressed())
		assert.LessOrEqual(sig.RecoveryID(), byte(3))
		assert.True(pub.Verify(digest[:], sig))

		recovered, err := sig.RecoverPublicKey(digest[:])
		assert.NoError(err)
		// bail out early instead of looping
		if err != nil {
			break
		}
		assert.True(pub.Equal(recovered))
	}
}

func TestVerifyRejectsHighS(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := NewPrivateKeyFromLogin("test", "owner", "test")
	require.NoError(err)
	pub := key.PublicKey()
	digest := sha256.Sum256([]byte("malleability check"))

	sig, err := key.Sign(digest[:])
	require.NoError(err)
	require.True(pub.Verify(digest[:], sig))

	// the mirrored signature (order - s, parity flipped) satisfies the raw
	// ECDSA equation but is not canonical
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(sig.S())
	require.False(overflow)
	s.Negate()
	mirrored := s.Bytes()

	raw := sig.Bytes()
	raw[0] ^= 1
	copy(raw[33:65], mirrored[:])

	highS, err := SignatureFromBytes(raw)
	require.NoError(err)
	assert.False(highS.IsLowS())
	assert.False(pub.Verify(digest[:], highS))
}

func TestVerifyRejectsTamper(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := GeneratePrivateKey()
	require.NoError(err)
	pub := key.PublicKey()
	digest := sha256.Sum256([]byte("payload"))

	sig, err := key.Sign(digest[:])
	require.NoError(err)

	otherDigest := sha256.Sum256([]byte("other payload"))
	assert.False(pub.Verify(otherDigest[:], sig))

	tampered := sig.Bytes()
	tampered[5] ^= 0x40
	badR, err := SignatureFromBytes(tampered)
	require.NoError(err)
	assert.False(pub.Verify(digest[:], badR))

	stranger, err := GeneratePrivateKey()
	require.NoError(err)
	assert.False(stranger.PublicKey().Verify(digest[:], sig))

	assert.False(pub.Verify(digest[:], nil))
	assert.False(pub.Verify(digest[:31], sig))
}

func TestSignatureTextRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := NewPrivateKeyFromLogin("test", "owner", "test")
	require.NoError(err)
	sig, err := key.SignMessage([]byte("text form"))
	require.NoError(err)

	s := sig.String()
	parsed, err := ParseSignature(s)
	require.NoError(err)
	assert.True(sig.Equal(parsed))

	// eosio-style prefixed form is tolerated
	parsed, err = ParseSignature("SIG_K1_" + s)
	require.NoError(err)
	assert.True(sig.Equal(parsed))

	corrupt := []byte(s)
	if corrupt[8] == 'a' {
		corrupt[8] = 'b'
	} else {
		corrupt[8] = 'a'
	}
	_, err = ParseSignature(string(corrupt))
	assert.Error(err)

	_, err = ParseSignature(strings.Replace(s, s[4:5], "!", 1))
	assert.ErrorIs(err, ErrInvalidEncoding)
}

func TestSignatureFromBytesValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := SignatureFromBytes(make([]byte, 64))
	assert.ErrorIs(err, ErrInvalidEncoding)

	raw := make([]byte, 65)
	raw[0] = 26
	_, err = SignatureFromBytes(raw)
	assert.ErrorIs(err, ErrInvalidEncoding)

	raw[0] = 35
	_, err = SignatureFromBytes(raw)
	assert.ErrorIs(err, ErrInvalidEncoding)

	// uncompressed-range headers parse even though this package never emits
	// them
	raw[0] = 27
	sig, err := SignatureFromBytes(raw)
	assert.NoError(err)
	assert.False(sig.IsCompressed())
	assert.Equal(byte(0), sig.RecoveryID())
}

func TestRecoverRejectsGarbage(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	digest := sha256.Sum256([]byte("recovery"))

	// r of zero can never recover a point
	raw := make([]byte, 65)
	raw[0] = 31
	raw[64] = 0x01
	sig, err := SignatureFromBytes(raw)
	require.NoError(err)

	_, err = sig.RecoverPublicKey(digest[:])
	assert.ErrorIs(err, ErrUnrecoverablePoint)
}

func TestSignMessageMatchesDigestPath(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key, err := GeneratePrivateKey()
	require.NoError(err)
	msg := []byte("hash once, then sign")
	digest := sha256.Sum256(msg)

	fromMsg, err := key.SignMessage(msg)
	require.NoError(err)
	fromDigest, err := key.Sign(digest[:])
	require.NoError(err)
	assert.True(fromMsg.Equal(fromDigest))

	assert.True(key.PublicKey().VerifyMessage(msg, fromMsg))
	assert.False(key.PublicKey().VerifyMessage([]byte("different"), fromMsg))
}
