package ecc

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/waggle-io/waggle/base58check"
)

// Recoverable signatures are 65 bytes: [header][r:32][s:32]. The header is
// 27 + recovery_id, plus 4 because the signer's public key is serialized in
// compressed form. Every implementation on the network hardcodes these two
// offsets, so headers produced here are always in 31..34 while 27..34 parse.
const (
	signatureSize       = 65
	sigHeaderMagic      = byte(27)
	sigHeaderCompressed = byte(4)
)

// Signature is a canonical recoverable ECDSA signature. Immutable once
// constructed; the zero value is not valid.
type Signature struct {
	raw [signatureSize]byte
}

// SignatureFromBytes loads a signature from its 65-byte layout, validating
// the header range. The r and s scalars are range-checked lazily by Verify
// and RecoverPublicKey, matching how the rest of the network treats
// signature bytes in transit.
func SignatureFromBytes(data []byte) (*Signature, error) {
	if len(data) != signatureSize {
		return nil, fmt.Errorf("%w: recoverable signature must be %d bytes, got %d",
			ErrInvalidEncoding, signatureSize, len(data))
	}
	if data[0] < sigHeaderMagic || data[0] > sigHeaderMagic+sigHeaderCompressed+3 {
		return nil, fmt.Errorf("%w: signature header byte 0x%02x out of range", ErrInvalidEncoding, data[0])
	}
	var sig Signature
	copy(sig.raw[:], data)
	return &sig, nil
}

// ParseSignature loads a signature from its mainnet text form.
func ParseSignature(s string) (*Signature, error) {
	return ParseSignatureOnNetwork(s, Mainnet)
}

// ParseSignatureOnNetwork loads a signature from its text form against an
// explicit network. An eosio-style "SIG_K1_" prefix is tolerated and
// stripped; the checksum is verified with the network's signature suffix.
func ParseSignatureOnNetwork(s string, net Network) (*Signature, error) {
	s = strings.TrimPrefix(s, "SIG_"+net.SignatureSuffix+"_")
	raw, err := base58check.DecodeRipemd160(s, net.SignatureSuffix)
	if err != nil {
		return nil, fmt.Errorf("invalid signature string: %w", err)
	}
	return SignatureFromBytes(raw)
}

// String returns the mainnet text form: base58 over the 65 signature bytes
// with a RIPEMD-160 checksum that mixes in the "K1" suffix.
func (s *Signature) String() string {
	return s.StringOnNetwork(Mainnet)
}

// StringOnNetwork returns the text form with an explicit network's signature
// suffix.
func (s *Signature) StringOnNetwork(net Network) string {
	return base58check.EncodeRipemd160(s.raw[:], net.SignatureSuffix)
}

// Bytes returns the 65-byte [header][r][s] layout.
func (s *Signature) Bytes() []byte {
	out := make([]byte, signatureSize)
	copy(out, s.raw[:])
	return out
}

// R returns the 32-byte big-endian r scalar.
func (s *Signature) R() []byte {
	return append([]byte(nil), s.raw[1:33]...)
}

// S returns the 32-byte big-endian s scalar.
func (s *Signature) S() []byte {
	return append([]byte(nil), s.raw[33:65]...)
}

// RecoveryID returns the embedded recovery id in 0..3: bit 0 is the candidate
// point's y parity, bit 1 marks the rare r-overflow case.
func (s *Signature) RecoveryID() byte {
	return (s.raw[0] - sigHeaderMagic) & 3
}

// IsCompressed reports whether the header marks the signer's public key as
// compressed. Signatures produced by this package always do.
func (s *Signature) IsCompressed() bool {
	return (s.raw[0]-sigHeaderMagic)&sigHeaderCompressed != 0
}

// IsLowS reports whether the s scalar sits in the low half of the scalar
// range, the canonical form this ecosystem accepts.
func (s *Signature) IsLowS() bool {
	var sc secp256k1.ModNScalar
	if overflow := sc.SetByteSlice(s.raw[33:65]); overflow {
		return false
	}
	return !sc.IsOverHalfOrder()
}

// RecoverPublicKey reconstructs the signer's public key from the signature
// and the 32-byte digest it signed. Fails with [ErrUnrecoverablePoint] when
// the recovery id and scalars do not describe a valid point.
func (s *Signature) RecoverPublicKey(digest []byte) (*PublicKey, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("can only recover from 32-byte digests, got %d bytes", len(digest))
	}
	pub, _, err := ecdsa.RecoverCompact(s.raw[:], digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecoverablePoint, err)
	}
	return &PublicKey{pub: pub}, nil
}

// Equal reports whether both signatures have identical bytes.
func (s *Signature) Equal(other *Signature) bool {
	if other == nil {
		return false
	}
	return s.raw == other.raw
}
