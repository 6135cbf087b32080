// Package sodiumoxide provides typed, hard-to-misuse wrappers around
// modern symmetric cryptographic primitives.
//
// Each primitive family lives in its own subpackage with fixed-size key
// and nonce types, so material from one family cannot be passed to
// another. The stream subpackage and its children implement stream
// ciphers; randombytes and memutil supply the shared random source and
// memory hygiene helpers.
//
// Basic usage:
//
//	if err := sodiumoxide.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	key := stream.GenerateKey()
//	defer key.Wipe()
//
//	nonce := stream.GenerateNonce()
//	ciphertext := stream.StreamXOR(message, nonce, key)
//
//	// The same call with the same nonce and key decrypts.
//	plaintext := stream.StreamXOR(ciphertext, nonce, key)
package sodiumoxide
