package ecc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bip39 "github.com/tyler-smith/go-bip39"
)

func TestSuggestBrainKey(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	bk, err := SuggestBrainKey()
	require.NoError(err)

	words := strings.Split(bk, " ")
	assert.Equal(brainKeyWords, len(words))

	inList := make(map[string]bool, 2048)
	for _, w := range bip39.GetWordList() {
		inList[w] = true
	}
	for _, w := range words {
		assert.Equal(strings.ToUpper(w), w)
		assert.True(inList[strings.ToLower(w)], w)
	}

	other, err := SuggestBrainKey()
	require.NoError(err)
	assert.NotEqual(bk, other)

	// a suggested brain key is directly usable as seed material
	key, err := NewPrivateKeyFromSeed(NormalizeBrainKey(bk))
	require.NoError(err)
	again, err := NewPrivateKeyFromSeed(NormalizeBrainKey(" " + bk + "  "))
	require.NoError(err)
	assert.True(key.Equal(again))
}

func TestNormalizeBrainKey(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("HELLO WORLD", NormalizeBrainKey("  HELLO   WORLD  "))
	assert.Equal("ONE TWO THREE", NormalizeBrainKey("ONE\tTWO\nTHREE"))
	assert.Equal("", NormalizeBrainKey("   "))
	assert.Equal("SAME", NormalizeBrainKey("SAME"))
}
