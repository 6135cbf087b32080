// Package stream provides symmetric stream ciphers: keystream
// generation and XOR-based encryption and decryption with per-family
// typed keys and nonces.
//
// # Cipher Families
//
// Each supported family lives in its own subpackage with the same API:
//
//   - xsalsa20: XSalsa20, 32-byte keys, 24-byte nonces (the default).
//   - salsa20: original Salsa20, 32-byte keys, 8-byte nonces.
//   - chacha20: original ChaCha20, 32-byte keys, 8-byte nonces.
//   - chacha20ietf: RFC 8439 ChaCha20, 32-byte keys, 12-byte nonces.
//   - xchacha20: XChaCha20, 32-byte keys, 24-byte nonces.
//   - shake256: SHAKE256 keystream, 32-byte keys, 24-byte nonces.
//
// This package re-exports the xsalsa20 subpackage, so [Key] is
// xsalsa20.Key and [StreamXOR] applies XSalsa20. Code that needs a
// specific family imports its subpackage directly; keys and nonces of
// different families are distinct types and cannot be mixed up at
// compile time.
//
// # Security Model
//
// Stream ciphers provide confidentiality only. The keystream is applied
// by XOR, so an attacker who knows the plaintext at some position can
// flip the corresponding ciphertext bits undetected. Authenticate the
// ciphertext with a MAC when integrity matters.
//
// A (key, nonce) pair must never be used for two different messages:
// XOR-ing two ciphertexts produced under the same pair cancels the
// keystream and exposes the XOR of the plaintexts. Families with
// 24-byte nonces can draw nonces at random; shorter-nonce families
// should step a counter nonce with [Nonce.Increment] instead.
//
// # Key Management
//
// Generate keys with [GenerateKey], or adopt existing key material with
// [KeyFromBytes]. Wipe keys as soon as they are no longer needed,
// typically via defer:
//
//	key := stream.GenerateKey()
//	defer key.Wipe()
//
//	nonce := stream.GenerateNonce()
//	ciphertext := stream.StreamXOR(message, nonce, key)
//
// Decryption is the same operation applied to the ciphertext.
package stream
