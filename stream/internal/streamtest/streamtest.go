// Package streamtest implements the behavioral test suite shared by the
// stream cipher family packages. Generated family tests adapt their typed
// API to [Config] closures over raw byte slices and call [Run], keeping
// the per-family test files down to the hookup.
package streamtest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ebfe/sodiumoxide/randombytes"
)

// Config adapts one family package to the suite.
type Config struct {
	KeySize   int
	NonceSize int

	// ErrInvalidLength is the family's construction error sentinel.
	ErrInvalidLength error

	// KeyStream, StreamXOR and XORKeyStream invoke the family functions
	// of the same names. The suite always passes nonce and key slices of
	// the exact declared sizes.
	KeyStream    func(n int, nonce, key []byte) []byte
	StreamXOR    func(m, nonce, key []byte) []byte
	XORKeyStream func(dst, src, nonce, key []byte)

	// NewKey and NewNonce attempt typed construction from raw bytes and
	// report the construction error.
	NewKey   func(b []byte) error
	NewNonce func(b []byte) error
}

// Run exercises a family against the contract shared by every stream
// cipher in this module: XOR round trips, equivalence with the raw
// keystream, agreement between the in-place and allocating paths, length
// preservation, determinism, and construction validation.
func Run(t *testing.T, c Config) {
	t.Run("RoundTrip", c.testRoundTrip)
	t.Run("KeystreamEquivalence", c.testKeystreamEquivalence)
	t.Run("InPlaceEquivalence", c.testInPlaceEquivalence)
	t.Run("Determinism", c.testDeterminism)
	t.Run("Sensitivity", c.testSensitivity)
	t.Run("ZeroMessage", c.testZeroMessage)
	t.Run("Construction", c.testConstruction)
}

func (c Config) testRoundTrip(t *testing.T) {
	for size := 0; size <= 1024; size++ {
		key := randombytes.Bytes(c.KeySize)
		nonce := randombytes.Bytes(c.NonceSize)
		msg := randombytes.Bytes(size)

		ct := c.StreamXOR(msg, nonce, key)
		if len(ct) != size {
			t.Fatalf("size %d: ciphertext length = %d", size, len(ct))
		}

		pt := c.StreamXOR(ct, nonce, key)
		if !bytes.Equal(pt, msg) {
			t.Fatalf("size %d: round trip did not restore the message", size)
		}
	}
}

func (c Config) testKeystreamEquivalence(t *testing.T) {
	for size := 0; size <= 1024; size++ {
		key := randombytes.Bytes(c.KeySize)
		nonce := randombytes.Bytes(c.NonceSize)
		msg := randombytes.Bytes(size)

		ct := c.StreamXOR(msg, nonce, key)
		ks := c.KeyStream(size, nonce, key)

		want := make([]byte, size)
		for i := range msg {
			want[i] = msg[i] ^ ks[i]
		}

		if !bytes.Equal(ct, want) {
			t.Fatalf("size %d: StreamXOR differs from message XOR keystream", size)
		}
	}
}

func (c Config) testInPlaceEquivalence(t *testing.T) {
	for size := 0; size <= 1024; size++ {
		key := randombytes.Bytes(c.KeySize)
		nonce := randombytes.Bytes(c.NonceSize)
		msg := randombytes.Bytes(size)

		want := c.StreamXOR(msg, nonce, key)

		buf := append([]byte(nil), msg...)
		c.XORKeyStream(buf, buf, nonce, key)

		if !bytes.Equal(buf, want) {
			t.Fatalf("size %d: in-place result differs from allocating result", size)
		}
	}
}

func (c Config) testDeterminism(t *testing.T) {
	key := randombytes.Bytes(c.KeySize)
	nonce := randombytes.Bytes(c.NonceSize)

	first := c.KeyStream(1024, nonce, key)
	second := c.KeyStream(1024, nonce, key)

	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different keystreams")
	}
}

func (c Config) testSensitivity(t *testing.T) {
	key := randombytes.Bytes(c.KeySize)
	nonce := randombytes.Bytes(c.NonceSize)
	ks := c.KeyStream(64, nonce, key)

	nonce2 := append([]byte(nil), nonce...)
	nonce2[0] ^= 0x01
	if bytes.Equal(ks, c.KeyStream(64, nonce2, key)) {
		t.Error("keystream ignores the nonce")
	}

	key2 := append([]byte(nil), key...)
	key2[0] ^= 0x01
	if bytes.Equal(ks, c.KeyStream(64, nonce, key2)) {
		t.Error("keystream ignores the key")
	}
}

func (c Config) testZeroMessage(t *testing.T) {
	key := randombytes.Bytes(c.KeySize)
	nonce := randombytes.Bytes(c.NonceSize)
	msg := make([]byte, 1024)

	ct := c.StreamXOR(msg, nonce, key)
	if len(ct) != 1024 {
		t.Fatalf("ciphertext length = %d, want 1024", len(ct))
	}
	if bytes.Equal(ct, msg) {
		t.Error("encrypting zeros returned zeros; keystream is degenerate")
	}

	if !bytes.Equal(c.StreamXOR(ct, nonce, key), msg) {
		t.Error("round trip did not restore the zero message")
	}
}

func (c Config) testConstruction(t *testing.T) {
	keySizes := []int{0, 1, c.KeySize - 1, c.KeySize + 1, c.KeySize * 2}
	for _, size := range keySizes {
		if err := c.NewKey(make([]byte, size)); !errors.Is(err, c.ErrInvalidLength) {
			t.Errorf("KeyFromBytes(%d bytes) error = %v, want ErrInvalidLength", size, err)
		}
	}
	if err := c.NewKey(randombytes.Bytes(c.KeySize)); err != nil {
		t.Errorf("KeyFromBytes(%d bytes) error = %v", c.KeySize, err)
	}

	nonceSizes := []int{0, 1, c.NonceSize - 1, c.NonceSize + 1, c.NonceSize * 2}
	for _, size := range nonceSizes {
		if err := c.NewNonce(make([]byte, size)); !errors.Is(err, c.ErrInvalidLength) {
			t.Errorf("NonceFromBytes(%d bytes) error = %v, want ErrInvalidLength", size, err)
		}
	}
	if err := c.NewNonce(randombytes.Bytes(c.NonceSize)); err != nil {
		t.Errorf("NonceFromBytes(%d bytes) error = %v", c.NonceSize, err)
	}
}
