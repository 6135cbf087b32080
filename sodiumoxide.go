package sodiumoxide

import (
	"github.com/ebfe/sodiumoxide/randombytes"
)

// Init prepares the library for use by verifying that the system random
// source backing key and nonce generation is available. Call it once
// during program startup, before generating keys or nonces from
// multiple goroutines. Init is idempotent and safe for concurrent use;
// repeated calls return the result of the first.
func Init() error {
	return randombytes.Init()
}
