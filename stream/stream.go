package stream

//go:generate go run gen.go

import (
	"github.com/ebfe/sodiumoxide/stream/xsalsa20"
)

const (
	// KeySize is the size of a default-family key in bytes.
	KeySize = xsalsa20.KeySize
	// NonceSize is the size of a default-family nonce in bytes.
	NonceSize = xsalsa20.NonceSize
)

// Key and Nonce are the default family's types. They alias the xsalsa20
// types, so values move freely between this package and that one.
type (
	Key   = xsalsa20.Key
	Nonce = xsalsa20.Nonce
)

// ErrInvalidLength is returned when constructing a key or nonce from a
// byte slice of the wrong length.
var ErrInvalidLength = xsalsa20.ErrInvalidLength

// GenerateKey returns a fresh random key.
func GenerateKey() *Key {
	return xsalsa20.GenerateKey()
}

// GenerateNonce returns a fresh random nonce.
func GenerateNonce() *Nonce {
	return xsalsa20.GenerateNonce()
}

// KeyFromBytes constructs a Key from exactly KeySize bytes.
func KeyFromBytes(b []byte) (*Key, error) {
	return xsalsa20.KeyFromBytes(b)
}

// NonceFromBytes constructs a Nonce from exactly NonceSize bytes.
func NonceFromBytes(b []byte) (*Nonce, error) {
	return xsalsa20.NonceFromBytes(b)
}

// KeyStream returns n bytes of raw keystream for (key, nonce).
// It panics if n is negative.
func KeyStream(n int, nonce *Nonce, key *Key) []byte {
	return xsalsa20.KeyStream(n, nonce, key)
}

// StreamXOR XORs m with the keystream for (key, nonce) and returns the
// result as a new slice. The operation is its own inverse: applying it
// to the ciphertext with the same nonce and key restores the message.
func StreamXOR(m []byte, nonce *Nonce, key *Key) []byte {
	return xsalsa20.StreamXOR(m, nonce, key)
}

// XORKeyStream XORs src with the keystream for (key, nonce) and writes
// the result to dst, which may be src for in-place operation; dst and
// src must otherwise not overlap. It panics if len(dst) < len(src).
func XORKeyStream(dst, src []byte, nonce *Nonce, key *Key) {
	xsalsa20.XORKeyStream(dst, src, nonce, key)
}
