// Deterministic secp256k1 keys and signatures as used by Hive-family chains
//
// This package keeps the ecosystem's wire and text conventions exact: WIF private keys with the shared 0x80 version byte and double SHA-256 checksum, "STM"-prefixed public keys over the compressed point with a RIPEMD-160 checksum, and 65-byte recoverable signatures whose leading header byte carries the recovery id. Byte-for-byte compatibility with the other implementations on the network is the point; none of these formats are configuration knobs.
//
// Signing is deterministic (RFC 6979 nonces) and always canonical: "low-S" signatures are produced, and verification rejects anything else, so a given key and digest have exactly one valid signature byte form. The embedded recovery id lets a verifier reconstruct the signer's public key from the signature and digest alone, which is how the chain validates transactions without shipping public keys in them.
//
// Keys are concrete immutable value types and secret scalars are present in memory. Login derivation (account, role, passphrase) is deliberately reproducible: the same credentials always reproduce the same key, which is what makes recovery from memorized text possible.
package ecc
