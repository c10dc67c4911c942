package ecc

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

const brainKeyWords = 16

// SuggestBrainKey returns a fresh 16-word brain key drawn uniformly from the
// BIP-39 English word list, uppercase and space-separated in the wallet
// convention. The result is a passphrase candidate for seed or login
// derivation, not a BIP-39 mnemonic: the words carry no checksum structure.
func SuggestBrainKey() (string, error) {
	list := bip39.GetWordList()
	limit := big.NewInt(int64(len(list)))
	words := make([]string, brainKeyWords)
	for i := range words {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("reading entropy for brain key: %w", err)
		}
		words[i] = strings.ToUpper(list[n.Int64()])
	}
	return strings.Join(words, " "), nil
}

// NormalizeBrainKey trims leading and trailing whitespace and collapses
// interior runs to single spaces, so a re-typed brain key derives the same
// seed regardless of spacing.
func NormalizeBrainKey(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
