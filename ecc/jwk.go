package ecc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// JWK is a JSON Web Key restricted to the curve this package supports.
// Expected to be marshalled/unmarshalled as JSON.
type JWK struct {
	KeyType string  `json:"kty"`
	Curve   string  `json:"crv"`
	X       string  `json:"x"` // base64url, no padding
	Y       string  `json:"y"` // base64url, no padding
	Use     string  `json:"use,omitempty"`
	KeyID   *string `json:"kid,omitempty"`
}

// ParsePublicKeyJWKBytes loads a [PublicKey] from a JWK serialized as JSON.
func ParsePublicKeyJWKBytes(jwkBytes []byte) (*PublicKey, error) {
	var jwk JWK
	if err := json.Unmarshal(jwkBytes, &jwk); err != nil {
		return nil, fmt.Errorf("parsing JWK JSON: %w", err)
	}
	return ParsePublicKeyJWK(jwk)
}

// ParsePublicKeyJWK loads a [PublicKey] from a JWK struct. Only EC keys on
// crv "secp256k1" are accepted, and the coordinates must name a point on the
// curve.
func ParsePublicKeyJWK(jwk JWK) (*PublicKey, error) {
	if jwk.KeyType != "EC" {
		return nil, fmt.Errorf("unsupported JWK key type: %s", jwk.KeyType)
	}
	if jwk.Curve != "secp256k1" {
		return nil, fmt.Errorf("unsupported JWK curve: %s", jwk.Curve)
	}

	xbuf, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("invalid JWK base64 encoding: %w", err)
	}
	ybuf, err := base64.RawURLEncoding.DecodeString(jwk.Y)
	if err != nil {
		return nil, fmt.Errorf("invalid JWK base64 encoding: %w", err)
	}
	if len(xbuf) != 32 || len(ybuf) != 32 {
		return nil, fmt.Errorf("invalid JWK coordinate size")
	}

	// rebuild the uncompressed point encoding and let the curve library
	// run its on-curve check
	raw := make([]byte, 0, 65)
	raw = append(raw, 0x04)
	raw = append(raw, xbuf...)
	raw = append(raw, ybuf...)
	return ParsePublicKeyBytes(raw)
}

// JWK returns the public key as a JSON Web Key struct with uncompressed
// affine coordinates, the form JOSE tooling expects.
func (k *PublicKey) JWK() (*JWK, error) {
	raw := k.UncompressedBytes()
	if len(raw) != 65 {
		return nil, fmt.Errorf("unexpected uncompressed point size")
	}
	jwk := JWK{
		KeyType: "EC",
		Curve:   "secp256k1",
		X:       base64.RawURLEncoding.EncodeToString(raw[1:33]),
		Y:       base64.RawURLEncoding.EncodeToString(raw[33:65]),
	}
	return &jwk, nil
}
