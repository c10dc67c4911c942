package ecc

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/waggle-io/waggle/base58check"
)

// PrivateKey is a secp256k1 signing key: a nonzero scalar below the curve
// order. Immutable once constructed. Note that the naive == operator does not
// compare keys; use Equal.
type PrivateKey struct {
	priv *secp256k1.PrivateKey
}

// NewPrivateKeyFromLogin derives the deterministic key for an account
// credential triple, the "login" scheme wallets use for the owner, active,
// posting, and memo roles. The seed is the plain concatenation
// account+role+passphrase, hashed once with SHA-256.
//
// The same triple always produces the same key; that reproducibility is the
// recovery mechanism, so no salt or stretching is involved. Treat the
// passphrase strength accordingly.
func NewPrivateKeyFromLogin(account, role, passphrase string) (*PrivateKey, error) {
	if account == "" || role == "" || passphrase == "" {
		return nil, fmt.Errorf("login derivation needs a non-empty account, role, and passphrase")
	}
	return NewPrivateKeyFromSeed(account + role + passphrase)
}

// NewPrivateKeyFromSeed derives a key from an arbitrary seed string: the
// scalar is the SHA-256 digest of the seed, interpreted big-endian. This is
// the primitive underneath login derivation and brain-key imports.
func NewPrivateKeyFromSeed(seed string) (*PrivateKey, error) {
	sum := sha256.Sum256([]byte(seed))
	return NewPrivateKeyFromBytes(sum[:])
}

// NewPrivateKeyFromBytes loads a key from its 32-byte big-endian scalar, as
// exported by Bytes. Scalars of zero or at least the curve order fail with
// [ErrInvalidDerivedKey]; deterministic inputs that land there will do so on
// every attempt, so callers should reject the input rather than retry.
func NewPrivateKeyFromBytes(data []byte) (*PrivateKey, error) {
	if len(data) != 32 {
		return nil, fmt.Errorf("invalid private key size: expected 32 bytes, got %d", len(data))
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(data)
	if overflow || scalar.IsZero() {
		return nil, ErrInvalidDerivedKey
	}
	return &PrivateKey{priv: secp256k1.NewPrivateKey(&scalar)}, nil
}

// GeneratePrivateKey creates a new random key from the operating system
// entropy source.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("secp256k1 key generation failed: %w", err)
	}
	return &PrivateKey{priv: key}, nil
}

// ParsePrivateKey decodes a WIF string carrying the mainnet version byte.
func ParsePrivateKey(wif string) (*PrivateKey, error) {
	return ParsePrivateKeyOnNetwork(wif, Mainnet)
}

// ParsePrivateKeyOnNetwork decodes a WIF string against an explicit network's
// version byte. Both WIF payload variants decode: the bare 32-byte scalar and
// the 33-byte form with a trailing 0x01 compression flag.
func ParsePrivateKeyOnNetwork(wif string, net Network) (*PrivateKey, error) {
	version, payload, err := base58check.Decode(wif)
	if err != nil {
		return nil, fmt.Errorf("invalid WIF: %w", err)
	}
	if version != net.WIFVersion {
		return nil, fmt.Errorf("WIF version byte 0x%02x does not belong to the %s network: %w",
			version, net.Name, ErrWrongKeyVersion)
	}
	switch len(payload) {
	case 32:
	case 33:
		if payload[32] != 0x01 {
			return nil, fmt.Errorf("%w: unknown WIF flag byte 0x%02x", ErrInvalidEncoding, payload[32])
		}
		payload = payload[:32]
	default:
		return nil, fmt.Errorf("%w: WIF payload must be 32 or 33 bytes, got %d", ErrInvalidEncoding, len(payload))
	}
	return NewPrivateKeyFromBytes(payload)
}

// WIF returns the key in Wallet Import Format with the mainnet version byte.
// The payload is the bare 32-byte scalar, the form the ecosystem exchanges.
func (k *PrivateKey) WIF() string {
	return k.WIFOnNetwork(Mainnet)
}

// WIFOnNetwork returns the key in Wallet Import Format with an explicit
// network's version byte.
func (k *PrivateKey) WIFOnNetwork(net Network) string {
	return base58check.Encode(net.WIFVersion, k.priv.Serialize())
}

// PublicKey returns the public point for this key (base point scalar
// multiplication). Always succeeds for a constructed PrivateKey.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{pub: k.priv.PubKey()}
}

// Sign produces the canonical recoverable signature of a 32-byte digest.
//
// The nonce is deterministic per RFC 6979, so signing the same digest with
// the same key reproduces an identical signature. The result is always
// "low-S": when raw ECDSA output lands in the high half of the scalar range,
// s is negated and the recovery parity flipped, keeping exactly one valid
// byte form per (key, digest) pair. The recovery id rides in the header byte.
func (k *PrivateKey) Sign(digest []byte) (*Signature, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("can only sign 32-byte digests, got %d bytes", len(digest))
	}
	compact := ecdsa.SignCompact(k.priv, digest, true)
	return SignatureFromBytes(compact)
}

// SignMessage hashes msg once with SHA-256 and signs the digest. Raw message
// bytes are never signed directly.
func (k *PrivateKey) SignMessage(msg []byte) (*Signature, error) {
	sum := sha256.Sum256(msg)
	return k.Sign(sum[:])
}

// Bytes returns the 32-byte big-endian scalar, the secret material itself.
func (k *PrivateKey) Bytes() []byte {
	return k.priv.Serialize()
}

// Equal reports whether both keys hold the same scalar.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return k.priv.Key.Equals(&other.priv.Key)
}
