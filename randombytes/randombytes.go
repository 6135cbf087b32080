// Package randombytes provides the process-wide source of cryptographically
// secure random bytes used by the key and nonce generators in this module.
//
// The source is the operating system CSPRNG exposed through crypto/rand.
// Call [Init] once during program startup to verify that the source is
// available; after that, [Fill] and [Bytes] are safe to call from any
// number of goroutines without additional locking. Init is idempotent, so
// packages layered on top of this one may call it again without harm.
//
// A failing system random source is not a recoverable condition: [Fill]
// and [Bytes] panic rather than return an error, so that key generation
// can never silently proceed with partial or missing entropy.
package randombytes

import (
	"crypto/rand"
	"io"
	"sync"
)

// reader is the random source used by Fill and Bytes.
// It defaults to crypto/rand and can be overridden in tests.
var reader io.Reader = rand.Reader

var (
	initOnce sync.Once
	initErr  error
)

// Init verifies that the random source is usable by reading a probe value
// from it. Only the first call performs the probe; subsequent calls return
// the recorded result. Init is safe for concurrent use.
func Init() error {
	initOnce.Do(func() {
		var probe [8]byte
		_, initErr = io.ReadFull(reader, probe[:])
	})
	return initErr
}

// Fill overwrites b with random bytes from the source.
// It panics if the source cannot produce len(b) bytes.
func Fill(b []byte) {
	if _, err := io.ReadFull(reader, b); err != nil {
		panic("randombytes: random source failed: " + err.Error())
	}
}

// Bytes returns n freshly generated random bytes.
// It panics if n is negative or if the source fails.
func Bytes(n int) []byte {
	b := make([]byte, n)
	Fill(b)
	return b
}
