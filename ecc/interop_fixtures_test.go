package ecc

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginFixture struct {
	Account       string `json:"account"`
	Role          string `json:"role"`
	Passphrase    string `json:"passphrase"`
	Seed          string `json:"seed"`
	PrivateKeyHex string `json:"privateKeyHex"`
	WIF           string `json:"wif"`
	PublicKey     string `json:"publicKey"`
}

// The fixture strings are shared across the ecosystem's implementations; a
// key derived here must reproduce them byte for byte.
func TestLoginFixtures(t *testing.T) {
	f, err := os.Open("testdata/login-fixtures.json")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	fixBytes, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}

	var fixtures []loginFixture
	if err := json.Unmarshal(fixBytes, &fixtures); err != nil {
		t.Fatal(err)
	}

	for _, row := range fixtures {
		testLoginFixture(t, row)
	}
}

func testLoginFixture(t *testing.T, row loginFixture) {
	assert := assert.New(t)

	key, err := NewPrivateKeyFromLogin(row.Account, row.Role, row.Passphrase)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(row.PrivateKeyHex, hex.EncodeToString(key.Bytes()))
	assert.Equal(row.WIF, key.WIF())
	assert.Equal(row.PublicKey, key.PublicKey().String())

	// the login triple is sugar over plain seed derivation
	seedKey, err := NewPrivateKeyFromSeed(row.Seed)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(key.Equal(seedKey))

	// and the documented text forms parse back to the same material
	parsed, err := ParsePrivateKey(row.WIF)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(key.Equal(parsed))

	pub, err := ParsePublicKey(row.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(key.PublicKey().Equal(pub))
}
