// Package memutil provides memory hygiene helpers for handling secret
// material: zeroization, scrambling, constant-time comparison, page
// locking, and little-endian counter increments.
//
// The cipher packages use [Wipe] to destroy key material and [Equal] to
// compare it without leaking timing information. [Lock] and [Unlock] are
// for callers that keep long-lived secrets and want to stop the pages
// holding them from being written to swap.
package memutil

import (
	"crypto/subtle"

	"github.com/awnumar/memcall"
	"github.com/awnumar/memguard"
)

// Wipe overwrites b with zero bytes. The write is performed by the
// memguard runtime and survives compiler dead-store elimination.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}

// Scramble overwrites b with cryptographically secure random bytes.
// Unlike Wipe, the result is indistinguishable from live key material,
// which hides wiped regions from memory scanners looking for zero runs.
func Scramble(b []byte) {
	memguard.ScrambleBytes(b)
}

// Equal reports whether x and y have identical contents. The comparison
// runs in constant time for inputs of equal length; inputs of different
// lengths return false immediately.
func Equal(x, y []byte) bool {
	return subtle.ConstantTimeCompare(x, y) == 1
}

// Lock asks the kernel to keep the pages backing b resident in memory,
// preventing secret material from being swapped to disk. It can fail on
// systems with a restrictive RLIMIT_MEMLOCK.
func Lock(b []byte) error {
	return memcall.Lock(b)
}

// Unlock releases pages previously pinned with Lock.
func Unlock(b []byte) error {
	return memcall.Unlock(b)
}

// Increment interprets b as a little-endian unsigned integer and adds
// one to it in place, wrapping around on overflow. An empty slice is left
// unchanged. The stream cipher packages use it to step counter nonces.
func Increment(b []byte) {
	for i := range b {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}
