package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownVectors(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		name string
		fn   func([]byte) []byte
		in   string
		out  string
	}{
		{"sha256 empty", SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256 abc", SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"double sha256 empty", DoubleSHA256, "", "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"},
		{"double sha256 hello", DoubleSHA256, "hello", "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50"},
		{"ripemd160 empty", Ripemd160, "", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"ripemd160 abc", Ripemd160, "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{"keccak256 empty", Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"keccak256 abc", Keccak256, "abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}

	for _, f := range fixtures {
		got := hex.EncodeToString(f.fn([]byte(f.in)))
		assert.Equal(f.out, got, f.name)
	}
}

func TestOutputSizes(t *testing.T) {
	assert := assert.New(t)

	msg := []byte("any input at all")
	assert.Equal(32, len(SHA256(msg)))
	assert.Equal(32, len(DoubleSHA256(msg)))
	assert.Equal(20, len(Ripemd160(msg)))
	assert.Equal(32, len(Keccak256(msg)))
}
