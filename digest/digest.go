// Package digest provides the fixed-output hash primitives used by the waggle
// key, signature, and transaction formats.
//
// Every function is pure and total: any input length, including empty, hashes
// without error. SHA-256 (single and doubled) covers seed derivation, message
// digesting, and WIF checksums; RIPEMD-160 covers the public-key and signature
// checksums. Keccak-256 is the legacy pre-NIST variant spoken by
// keccak-based ecosystems; no waggle text format uses it.
package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the 32-byte SHA-256 digest of b.
func SHA256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// DoubleSHA256 returns SHA256(SHA256(b)), the checksum hash of the WIF format.
func DoubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Ripemd160 returns the 20-byte RIPEMD-160 digest of b.
func Ripemd160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}

// Keccak256 returns the 32-byte legacy Keccak-256 digest of b. This is the
// original Keccak padding, not standardized SHA3-256.
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}
