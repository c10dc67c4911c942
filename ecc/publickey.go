package ecc

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/waggle-io/waggle/base58check"
)

// PublicKey is a point on the secp256k1 curve. Values decoded from external
// bytes or text are always on-curve; there is no unchecked constructor. Note
// that the naive == operator does not compare keys; use Equal.
type PublicKey struct {
	pub *secp256k1.PublicKey
}

// ParsePublicKey loads a public key from its mainnet text form.
func ParsePublicKey(s string) (*PublicKey, error) {
	return ParsePublicKeyOnNetwork(s, Mainnet)
}

// ParsePublicKeyOnNetwork loads a public key from its text form against an
// explicit network's address prefix: prefix + base58(point33 ||
// ripemd160(point33)[:4]).
func ParsePublicKeyOnNetwork(s string, net Network) (*PublicKey, error) {
	if !strings.HasPrefix(s, net.AddressPrefix) {
		return nil, fmt.Errorf("public key is missing the %q prefix: %w", net.AddressPrefix, ErrWrongKeyVersion)
	}
	raw, err := base58check.DecodeRipemd160(strings.TrimPrefix(s, net.AddressPrefix), "")
	if err != nil {
		return nil, fmt.Errorf("invalid public key string: %w", err)
	}
	return ParsePublicKeyBytes(raw)
}

// ParsePublicKeyBytes loads a public key from its 33-byte compressed or
// 65-byte uncompressed point encoding, enforcing that the point is on the
// curve.
func ParsePublicKeyBytes(data []byte) (*PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &PublicKey{pub: pub}, nil
}

// String returns the mainnet text form, the format account authorities are
// written in on-chain.
func (k *PublicKey) String() string {
	return k.StringOnNetwork(Mainnet)
}

// StringOnNetwork returns the text form with an explicit network's address
// prefix. The checksum is the RIPEMD-160 digest of the compressed point; no
// version byte is encoded.
func (k *PublicKey) StringOnNetwork(net Network) string {
	return net.AddressPrefix + base58check.EncodeRipemd160(k.pub.SerializeCompressed(), "")
}

// Bytes returns the 33-byte compressed point: one parity prefix byte and the
// big-endian x coordinate.
func (k *PublicKey) Bytes() []byte {
	return k.pub.SerializeCompressed()
}

// UncompressedBytes returns the 65-byte uncompressed point: 0x04 followed by
// the big-endian x and y coordinates.
func (k *PublicKey) UncompressedBytes() []byte {
	return k.pub.SerializeUncompressed()
}

// Verify reports whether sig is a valid canonical signature of a 32-byte
// digest under this key. Malformed, out-of-range, or high-S signatures report
// false; an invalid signature is an expected outcome, not an error.
func (k *PublicKey) Verify(digest []byte, sig *Signature) bool {
	if sig == nil || len(digest) != 32 {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig.raw[1:33]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig.raw[33:65]); overflow || s.IsZero() {
		return false
	}
	if s.IsOverHalfOrder() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, k.pub)
}

// VerifyMessage hashes msg once with SHA-256 and verifies the digest.
func (k *PublicKey) VerifyMessage(msg []byte, sig *Signature) bool {
	sum := sha256.Sum256(msg)
	return k.Verify(sum[:], sig)
}

// Equal reports whether both keys are the same curve point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return k.pub.IsEqual(other.pub)
}
