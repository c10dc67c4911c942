package ecc

// Network carries the text-format parameters that vary between Hive-family
// chains: the WIF version byte, the prefix on public key strings, and the
// suffix mixed into signature checksums.
//
// The curve, checksum constructions, and byte layouts never vary; a Network
// only selects prefixes. Functions without an OnNetwork variant do not depend
// on any of these parameters.
type Network struct {
	Name            string
	WIFVersion      byte
	AddressPrefix   string
	SignatureSuffix string
}

// Mainnet is the production Hive network. The package-level helpers that do
// not take an explicit Network use these parameters.
var Mainnet = Network{
	Name:            "hive",
	WIFVersion:      0x80,
	AddressPrefix:   "STM",
	SignatureSuffix: "K1",
}

// Testnet differs from mainnet only in the public key prefix.
var Testnet = Network{
	Name:            "testnet",
	WIFVersion:      0x80,
	AddressPrefix:   "TST",
	SignatureSuffix: "K1",
}
