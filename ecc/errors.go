package ecc

import (
	"errors"

	"github.com/waggle-io/waggle/base58check"
)

// Text-layer failures surface from the codec unchanged, so callers can match
// them with errors.Is without importing base58check.
var (
	// ErrInvalidEncoding indicates text outside the Base58 alphabet or a
	// buffer with an impossible length.
	ErrInvalidEncoding = base58check.ErrInvalidEncoding

	// ErrChecksumMismatch indicates a mistyped, corrupted, or truncated
	// key or signature string.
	ErrChecksumMismatch = base58check.ErrChecksumMismatch
)

var (
	// ErrWrongKeyVersion indicates a WIF version byte or public key prefix
	// belonging to a different network than the one asked for.
	ErrWrongKeyVersion = errors.New("ecc: key version does not match the network")

	// ErrInvalidDerivedKey indicates a candidate scalar of zero or at least
	// the curve order. For SHA-256 output this is astronomically unlikely,
	// but it is checked on every construction path.
	ErrInvalidDerivedKey = errors.New("ecc: derived scalar is not a valid private key")

	// ErrInvalidPublicKey indicates bytes that do not decode to a point on
	// the secp256k1 curve.
	ErrInvalidPublicKey = errors.New("ecc: not a valid secp256k1 point")

	// ErrUnrecoverablePoint indicates a signature whose recovery id does not
	// yield a valid public key for the given digest.
	ErrUnrecoverablePoint = errors.New("ecc: recovery id does not yield a valid point")
)
