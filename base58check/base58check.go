// Package base58check implements the checksummed Base58 text encodings used
// by Hive-family chains.
//
// Two checksum conventions exist side by side on the wire. Private keys (WIF)
// use the bitcoin-style form: a version byte is prepended and the trailing
// 4-byte checksum is a double SHA-256. Public keys and signatures use the
// graphene form: no version byte, and the checksum is a RIPEMD-160 digest
// over the payload plus an out-of-band suffix ("" for public keys, "K1" for
// signatures). Both are provided here so callers pick the variant their
// format documents.
package base58check

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/waggle-io/waggle/digest"
)

const checksumSize = 4

var (
	// ErrInvalidEncoding indicates input outside the Base58 alphabet or a
	// decoded buffer too short to carry a checksum.
	ErrInvalidEncoding = errors.New("base58check: invalid encoding")

	// ErrChecksumMismatch indicates the trailing checksum does not match the
	// decoded payload, which usually means a mistyped or truncated string.
	ErrChecksumMismatch = errors.New("base58check: checksum mismatch")
)

// Encode returns the Base58Check form of payload: the version byte and
// payload are concatenated, the first 4 bytes of their double SHA-256 are
// appended, and the whole buffer is Base58 encoded.
func Encode(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+checksumSize)
	buf = append(buf, version)
	buf = append(buf, payload...)
	buf = append(buf, digest.DoubleSHA256(buf)[:checksumSize]...)
	return base58.Encode(buf)
}

// Decode splits a Base58Check string into its version byte and payload,
// verifying the double SHA-256 checksum. The decoded buffer must be at least
// 5 bytes: one version byte plus the 4-byte checksum.
func Decode(s string) (byte, []byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) < 1+checksumSize {
		return 0, nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidEncoding, len(raw))
	}
	body, sum := raw[:len(raw)-checksumSize], raw[len(raw)-checksumSize:]
	if !bytes.Equal(digest.DoubleSHA256(body)[:checksumSize], sum) {
		return 0, nil, ErrChecksumMismatch
	}
	payload := make([]byte, len(body)-1)
	copy(payload, body[1:])
	return body[0], payload, nil
}

// EncodeRipemd160 returns the graphene-style Base58 form of payload: the
// trailing 4-byte checksum is the RIPEMD-160 digest of payload||suffix. The
// suffix participates in the checksum but is not itself encoded.
func EncodeRipemd160(payload []byte, suffix string) string {
	check := digest.Ripemd160(append(append([]byte(nil), payload...), suffix...))
	buf := make([]byte, 0, len(payload)+checksumSize)
	buf = append(buf, payload...)
	buf = append(buf, check[:checksumSize]...)
	return base58.Encode(buf)
}

// DecodeRipemd160 is the inverse of EncodeRipemd160, verifying the checksum
// against the same suffix used when encoding.
func DecodeRipemd160(s string, suffix string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) < 1+checksumSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidEncoding, len(raw))
	}
	payload, sum := raw[:len(raw)-checksumSize], raw[len(raw)-checksumSize:]
	check := digest.Ripemd160(append(append([]byte(nil), payload...), suffix...))
	if !bytes.Equal(check[:checksumSize], sum) {
		return nil, ErrChecksumMismatch
	}
	return append([]byte(nil), payload...), nil
}
