package cipher

import (
	"bytes"
	"testing"
)

// toyByte derives a deterministic keystream byte for position i so the
// two engine entry points can be implemented independently and checked
// against each other.
func toyByte(i int, nonce, key []byte) byte {
	return key[i%len(key)] ^ nonce[i%len(nonce)] ^ byte(i)
}

// newToy returns a toy family. With withKeyStream set, the engine carries
// a direct keystream entry point; otherwise the core must fall back to
// XORKeyStream over zeros.
func newToy(withKeyStream bool) *Cipher {
	c := &Cipher{
		Name:      "toy",
		KeySize:   4,
		NonceSize: 2,
	}
	c.Engine.XORKeyStream = func(dst, src, nonce, key []byte) {
		for i := range src {
			dst[i] = src[i] ^ toyByte(i, nonce, key)
		}
	}
	if withKeyStream {
		c.Engine.KeyStream = func(out, nonce, key []byte) {
			for i := range out {
				out[i] = toyByte(i, nonce, key)
			}
		}
	}
	return c
}

var (
	toyKey   = []byte{1, 2, 3, 4}
	toyNonce = []byte{9, 7}
)

func TestStream(t *testing.T) {
	c := newToy(true)

	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single byte", 1},
		{"unaligned", 17},
		{"large", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.Stream(tt.n, toyNonce, toyKey)
			if len(out) != tt.n {
				t.Errorf("len(Stream(%d)) = %d, want %d", tt.n, len(out), tt.n)
			}

			again := c.Stream(tt.n, toyNonce, toyKey)
			if !bytes.Equal(out, again) {
				t.Error("Stream() is not deterministic")
			}
		})
	}
}

func TestStream_FallbackMatchesKeyStream(t *testing.T) {
	direct := newToy(true)
	fallback := newToy(false)

	want := direct.Stream(256, toyNonce, toyKey)
	got := fallback.Stream(256, toyNonce, toyKey)

	if !bytes.Equal(got, want) {
		t.Error("XORKeyStream-over-zeros fallback differs from the direct keystream entry")
	}
}

func TestStreamXOR(t *testing.T) {
	c := newToy(true)
	msg := []byte("attack at dawn")

	ct := c.StreamXOR(msg, toyNonce, toyKey)
	if len(ct) != len(msg) {
		t.Fatalf("len(StreamXOR) = %d, want %d", len(ct), len(msg))
	}
	if bytes.Equal(ct, msg) {
		t.Error("StreamXOR() returned the message unchanged")
	}

	// XOR is self-inverse.
	pt := c.StreamXOR(ct, toyNonce, toyKey)
	if !bytes.Equal(pt, msg) {
		t.Errorf("round trip = %q, want %q", pt, msg)
	}
}

func TestStreamXOR_MatchesManualXOR(t *testing.T) {
	c := newToy(true)
	msg := bytes.Repeat([]byte{0xa5}, 333)

	ct := c.StreamXOR(msg, toyNonce, toyKey)

	ks := c.Stream(len(msg), toyNonce, toyKey)
	want := make([]byte, len(msg))
	for i := range msg {
		want[i] = msg[i] ^ ks[i]
	}

	if !bytes.Equal(ct, want) {
		t.Error("StreamXOR() differs from message XOR keystream")
	}
}

func TestXORKeyStream_InPlace(t *testing.T) {
	c := newToy(true)
	msg := []byte("in-place buffers must match the allocating path")

	want := c.StreamXOR(msg, toyNonce, toyKey)

	buf := append([]byte(nil), msg...)
	c.XORKeyStream(buf, buf, toyNonce, toyKey)

	if !bytes.Equal(buf, want) {
		t.Error("in-place XORKeyStream differs from StreamXOR")
	}
}

func TestXORKeyStream_DstLargerThanSrc(t *testing.T) {
	c := newToy(true)
	src := []byte{1, 2, 3}
	dst := bytes.Repeat([]byte{0xee}, 8)

	c.XORKeyStream(dst, src, toyNonce, toyKey)

	want := c.StreamXOR(src, toyNonce, toyKey)
	if !bytes.Equal(dst[:3], want) {
		t.Error("prefix of dst does not match StreamXOR output")
	}
	if !bytes.Equal(dst[3:], bytes.Repeat([]byte{0xee}, 5)) {
		t.Error("bytes past len(src) were modified")
	}
}

func TestXORKeyStream_Empty(t *testing.T) {
	c := newToy(true)
	c.XORKeyStream(nil, nil, toyNonce, toyKey)
}

func TestPanics(t *testing.T) {
	c := newToy(true)

	tests := []struct {
		name string
		call func()
	}{
		{"negative length", func() { c.Stream(-1, toyNonce, toyKey) }},
		{"short dst", func() { c.XORKeyStream(make([]byte, 2), make([]byte, 3), toyNonce, toyKey) }},
		{"bad nonce length", func() { c.Stream(8, []byte{1}, toyKey) }},
		{"bad key length", func() { c.Stream(8, toyNonce, []byte{1, 2}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			tt.call()
		})
	}
}
