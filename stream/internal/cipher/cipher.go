// Package cipher contains the engine-agnostic core shared by the stream
// cipher family packages. Each family instantiates one [Cipher] value
// describing its sizes and engine entry points; the generated package
// code wraps the Cipher methods in functions operating on the family's
// typed keys and nonces.
package cipher

// Engine is the pair of entry points into a family's underlying cipher
// implementation. Implementations run in time linear in the message
// length and never fail for well-formed fixed-length nonces and keys.
type Engine struct {
	// XORKeyStream XORs src with the keystream derived from (key, nonce)
	// and writes the result to dst. The core guarantees len(dst) ==
	// len(src) > 0 and exact nonce and key lengths.
	XORKeyStream func(dst, src, nonce, key []byte)

	// KeyStream writes len(out) keystream bytes to out. Optional: when
	// nil, the core obtains the keystream by calling XORKeyStream over a
	// zeroed buffer.
	KeyStream func(out, nonce, key []byte)
}

// Cipher describes one stream cipher family.
type Cipher struct {
	// Name prefixes panic messages, e.g. "xsalsa20".
	Name string

	// KeySize and NonceSize are the exact lengths, in bytes, accepted
	// by the engine.
	KeySize   int
	NonceSize int

	Engine Engine
}

// Stream returns n bytes of raw keystream for (key, nonce).
// It panics if n is negative.
func (c *Cipher) Stream(n int, nonce, key []byte) []byte {
	if n < 0 {
		panic(c.Name + ": negative keystream length")
	}
	c.check(nonce, key)
	out := make([]byte, n)
	if n == 0 {
		return out
	}
	if c.Engine.KeyStream != nil {
		c.Engine.KeyStream(out, nonce, key)
	} else {
		// Zeros XORed with the keystream are the keystream.
		c.Engine.XORKeyStream(out, out, nonce, key)
	}
	return out
}

// StreamXOR returns m XORed with the keystream for (key, nonce) as a new
// slice. Applying it twice with the same nonce and key restores m.
func (c *Cipher) StreamXOR(m, nonce, key []byte) []byte {
	c.check(nonce, key)
	out := make([]byte, len(m))
	if len(m) != 0 {
		c.Engine.XORKeyStream(out, m, nonce, key)
	}
	return out
}

// XORKeyStream XORs src with the keystream for (key, nonce) and writes
// the result to dst, which may be src for in-place operation. dst and
// src must otherwise not overlap. It panics if len(dst) < len(src).
func (c *Cipher) XORKeyStream(dst, src, nonce, key []byte) {
	if len(dst) < len(src) {
		panic(c.Name + ": output smaller than input")
	}
	c.check(nonce, key)
	if len(src) == 0 {
		return
	}
	c.Engine.XORKeyStream(dst[:len(src)], src, nonce, key)
}

// check guards the internal API against slices whose lengths the typed
// family wrappers would have made impossible.
func (c *Cipher) check(nonce, key []byte) {
	if len(nonce) != c.NonceSize {
		panic(c.Name + ": bad nonce length")
	}
	if len(key) != c.KeySize {
		panic(c.Name + ": bad key length")
	}
}
