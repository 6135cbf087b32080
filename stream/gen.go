//go:build ignore

// Command gen emits one package per stream cipher family from the table
// below. Every package carries the same typed API; only the sizes, the
// engine adapter, and the documentation differ. Run it from the stream
// directory:
//
//	go run gen.go
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type family struct {
	Pkg       string   // package and directory name
	Name      string   // display name used in documentation
	KeySize   int      // bytes
	NonceSize int      // bytes
	Doc       string   // package doc lead comment
	NonceDoc  string   // GenerateNonce doc comment
	Stdlib    []string // extra stdlib imports the engine body needs
	Imports   []string // engine import specs, alias included when needed
	Engine    string   // cipher.Engine literal, tab-indented
}

const (
	nonceDocSafe = `// GenerateNonce returns a fresh random nonce.
// At 24 bytes, random nonces are safe: the chance of repeating one
// under the same key is negligible for any realistic message count.`

	nonceDocShort = `// GenerateNonce returns a fresh random nonce.
// At only 8 bytes, random nonces repeat with real probability as
// message counts grow. Use a counter nonce stepped with Increment when
// sending many messages under one key; random generation is fine for a
// single message.`

	nonceDocIETF = `// GenerateNonce returns a fresh random nonce.
// At 12 bytes, random nonces only become collision-prone beyond
// billions of messages under one key; for counts in that range, use a
// counter nonce stepped with Increment.`
)

var families = []family{
	{
		Pkg:       "salsa20",
		Name:      "Salsa20",
		KeySize:   32,
		NonceSize: 8,
		Doc: `// Package salsa20 implements the Salsa20 stream cipher with 8-byte
// nonces, as originally specified by Bernstein.`,
		NonceDoc: nonceDocShort,
		Imports:  []string{`salsa "golang.org/x/crypto/salsa20"`},
		Engine: `	Engine: cipher.Engine{
		XORKeyStream: func(dst, src, nonce, key []byte) {
			salsa.XORKeyStream(dst, src, nonce, (*[32]byte)(key))
		},
	},`,
	},
	{
		Pkg:       "xsalsa20",
		Name:      "XSalsa20",
		KeySize:   32,
		NonceSize: 24,
		Doc: `// Package xsalsa20 implements the XSalsa20 stream cipher: Salsa20
// extended to 24-byte nonces through HSalsa20 subkey derivation.
// XSalsa20 is the default cipher exposed by the parent stream package.`,
		NonceDoc: nonceDocSafe,
		Imports:  []string{`"golang.org/x/crypto/salsa20"`},
		Engine: `	Engine: cipher.Engine{
		XORKeyStream: func(dst, src, nonce, key []byte) {
			salsa20.XORKeyStream(dst, src, nonce, (*[32]byte)(key))
		},
	},`,
	},
	{
		Pkg:       "chacha20",
		Name:      "ChaCha20",
		KeySize:   32,
		NonceSize: 8,
		Doc: `// Package chacha20 implements the ChaCha20 stream cipher in its
// original form, with 8-byte nonces and a 64-bit block counter.`,
		NonceDoc: nonceDocShort,
		Imports:  []string{`chacha "github.com/aead/chacha20"`},
		Engine: `	Engine: cipher.Engine{
		XORKeyStream: func(dst, src, nonce, key []byte) {
			chacha.XORKeyStream(dst, src, nonce, key)
		},
	},`,
	},
	{
		Pkg:       "chacha20ietf",
		Name:      "ChaCha20-IETF",
		KeySize:   32,
		NonceSize: 12,
		Doc: `// Package chacha20ietf implements the IETF variant of the ChaCha20
// stream cipher (RFC 8439), with 12-byte nonces and a 32-bit block
// counter.`,
		NonceDoc: nonceDocIETF,
		Imports:  []string{`"golang.org/x/crypto/chacha20"`},
		Engine: `	Engine: cipher.Engine{
		XORKeyStream: func(dst, src, nonce, key []byte) {
			c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
			if err != nil {
				panic("chacha20ietf: " + err.Error())
			}
			c.XORKeyStream(dst, src)
		},
	},`,
	},
	{
		Pkg:       "xchacha20",
		Name:      "XChaCha20",
		KeySize:   32,
		NonceSize: 24,
		Doc: `// Package xchacha20 implements the XChaCha20 stream cipher: ChaCha20
// extended to 24-byte nonces through HChaCha20 subkey derivation.`,
		NonceDoc: nonceDocSafe,
		Imports:  []string{`"golang.org/x/crypto/chacha20"`},
		Engine: `	Engine: cipher.Engine{
		XORKeyStream: func(dst, src, nonce, key []byte) {
			c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
			if err != nil {
				panic("xchacha20: " + err.Error())
			}
			c.XORKeyStream(dst, src)
		},
	},`,
	},
	{
		Pkg:       "shake256",
		Name:      "SHAKE256",
		KeySize:   32,
		NonceSize: 24,
		Doc: `// Package shake256 implements a stream cipher built on the SHAKE256
// extendable-output function: the keystream for a message is
// SHAKE256(key || nonce), squeezed out to the message length. It
// trades the speed of the dedicated ciphers for reuse of the SHA-3
// permutation.`,
		NonceDoc: nonceDocSafe,
		Stdlib:   []string{"crypto/subtle", "io"},
		Imports:  []string{`"github.com/cloudflare/circl/xof"`},
		Engine: `	Engine: cipher.Engine{
		XORKeyStream: func(dst, src, nonce, key []byte) {
			x := xof.SHAKE256.New()
			x.Write(key)
			x.Write(nonce)
			var ks [512]byte
			for len(src) > 0 {
				n := len(src)
				if n > len(ks) {
					n = len(ks)
				}
				if _, err := io.ReadFull(x, ks[:n]); err != nil {
					panic("shake256: xof read: " + err.Error())
				}
				subtle.XORBytes(dst[:n], src[:n], ks[:n])
				dst, src = dst[n:], src[n:]
			}
		},
		KeyStream: func(out, nonce, key []byte) {
			x := xof.SHAKE256.New()
			x.Write(key)
			x.Write(nonce)
			if _, err := io.ReadFull(x, out); err != nil {
				panic("shake256: xof read: " + err.Error())
			}
		},
	},`,
	},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen: ")

	funcs := template.FuncMap{
		"article": article,
		"imports": importBlock,
	}
	code := template.Must(template.New("code").Funcs(funcs).Parse(codeTemplate))
	test := template.Must(template.New("test").Parse(testTemplate))

	for _, f := range families {
		emit(code, f, filepath.Join(f.Pkg, f.Pkg+".go"))
		emit(test, f, filepath.Join(f.Pkg, f.Pkg+"_test.go"))
	}
}

func emit(t *template.Template, f family, path string) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, f); err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("%s: format: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		log.Fatalf("%s: %v", path, err)
	}
}

// article picks the indefinite article for a family name. "X" counts as
// a vowel sound ("an XSalsa20 key").
func article(name string) string {
	switch name[0] {
	case 'A', 'E', 'I', 'O', 'U', 'X':
		return "an"
	}
	return "a"
}

// importBlock renders the import section for a family's code file:
// the fixed stdlib and module imports merged with the engine's own.
func importBlock(f family) string {
	std := []string{`"errors"`, `"fmt"`}
	for _, s := range f.Stdlib {
		std = append(std, `"`+s+`"`)
	}
	sort.Strings(std)

	ext := []string{
		`"github.com/ebfe/sodiumoxide/memutil"`,
		`"github.com/ebfe/sodiumoxide/randombytes"`,
		`"github.com/ebfe/sodiumoxide/stream/internal/cipher"`,
	}
	ext = append(ext, f.Imports...)
	sort.Slice(ext, func(i, j int) bool { return importPath(ext[i]) < importPath(ext[j]) })

	var b strings.Builder
	for _, s := range std {
		b.WriteString("\t" + s + "\n")
	}
	b.WriteString("\n")
	for _, s := range ext {
		b.WriteString("\t" + s + "\n")
	}
	return b.String()
}

// importPath strips an optional alias from an import spec so specs sort
// by path the way goimports orders them.
func importPath(spec string) string {
	if i := strings.IndexByte(spec, '"'); i > 0 {
		return spec[i:]
	}
	return spec
}

const codeTemplate = `// Code generated by go run gen.go; DO NOT EDIT.

{{.Doc}}
//
// The keystream is applied by XOR and carries no authentication: an
// attacker can flip message bits undetected. Pair the cipher with a MAC
// when integrity matters. A (key, nonce) pair must never be used for
// two different messages.
package {{.Pkg}}

import (
{{imports .}})

const (
	// KeySize is the size of {{article .Name}} {{.Name}} key in bytes.
	KeySize = {{.KeySize}}
	// NonceSize is the size of {{article .Name}} {{.Name}} nonce in bytes.
	NonceSize = {{.NonceSize}}
)

// ErrInvalidLength is returned when constructing a key or nonce from a
// byte slice of the wrong length.
var ErrInvalidLength = errors.New("{{.Pkg}}: invalid length")

var core = cipher.Cipher{
	Name:      "{{.Pkg}}",
	KeySize:   KeySize,
	NonceSize: NonceSize,
{{.Engine}}
}

// A Key is a secret {{.Name}} key. Keys for different cipher families
// are distinct types and cannot be interchanged.
type Key [KeySize]byte

// A Nonce selects one keystream out of the many a single key can
// produce. Nonces are not secret.
type Nonce [NonceSize]byte

// GenerateKey returns a fresh random key.
// It panics if the system random source fails; call randombytes.Init
// during startup to surface such failures early.
func GenerateKey() *Key {
	k := new(Key)
	randombytes.Fill(k[:])
	return k
}

{{.NonceDoc}}
func GenerateNonce() *Nonce {
	n := new(Nonce)
	randombytes.Fill(n[:])
	return n
}

// KeyFromBytes constructs a Key from exactly KeySize bytes.
func KeyFromBytes(b []byte) (*Key, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidLength, len(b), KeySize)
	}
	k := new(Key)
	copy(k[:], b)
	return k, nil
}

// NonceFromBytes constructs a Nonce from exactly NonceSize bytes.
func NonceFromBytes(b []byte) (*Nonce, error) {
	if len(b) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidLength, len(b), NonceSize)
	}
	n := new(Nonce)
	copy(n[:], b)
	return n, nil
}

// Equal reports whether two keys hold the same bytes. The comparison
// runs in constant time.
func (k *Key) Equal(other *Key) bool {
	return memutil.Equal(k[:], other[:])
}

// Wipe overwrites the key with zeros. Call it, typically via defer, as
// soon as the key is no longer needed; a key dropped without Wipe
// leaves its bytes in memory until the runtime reuses them.
func (k *Key) Wipe() {
	memutil.Wipe(k[:])
}

// Increment steps the nonce as a little-endian counter, wrapping on
// overflow. Counter nonces are the safe way to send many messages
// under one key.
func (n *Nonce) Increment() {
	memutil.Increment(n[:])
}

// KeyStream returns n bytes of raw keystream for (key, nonce).
// It panics if n is negative.
func KeyStream(n int, nonce *Nonce, key *Key) []byte {
	return core.Stream(n, nonce[:], key[:])
}

// StreamXOR XORs m with the keystream for (key, nonce) and returns the
// result as a new slice. The operation is its own inverse: applying it
// to the ciphertext with the same nonce and key restores the message.
func StreamXOR(m []byte, nonce *Nonce, key *Key) []byte {
	return core.StreamXOR(m, nonce[:], key[:])
}

// XORKeyStream XORs src with the keystream for (key, nonce) and writes
// the result to dst, which may be src for in-place operation; dst and
// src must otherwise not overlap. It panics if len(dst) < len(src).
// The result is byte-identical to StreamXOR on the same inputs.
func XORKeyStream(dst, src []byte, nonce *Nonce, key *Key) {
	core.XORKeyStream(dst, src, nonce[:], key[:])
}
`

const testTemplate = `// Code generated by go run gen.go; DO NOT EDIT.

package {{.Pkg}}

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ebfe/sodiumoxide/stream/internal/streamtest"
)

func config() streamtest.Config {
	return streamtest.Config{
		KeySize:          KeySize,
		NonceSize:        NonceSize,
		ErrInvalidLength: ErrInvalidLength,
		KeyStream: func(n int, nonce, key []byte) []byte {
			return KeyStream(n, mustNonce(nonce), mustKey(key))
		},
		StreamXOR: func(m, nonce, key []byte) []byte {
			return StreamXOR(m, mustNonce(nonce), mustKey(key))
		},
		XORKeyStream: func(dst, src, nonce, key []byte) {
			XORKeyStream(dst, src, mustNonce(nonce), mustKey(key))
		},
		NewKey: func(b []byte) error {
			_, err := KeyFromBytes(b)
			return err
		},
		NewNonce: func(b []byte) error {
			_, err := NonceFromBytes(b)
			return err
		},
	}
}

func mustKey(b []byte) *Key {
	k, err := KeyFromBytes(b)
	if err != nil {
		panic(err)
	}
	return k
}

func mustNonce(b []byte) *Nonce {
	n, err := NonceFromBytes(b)
	if err != nil {
		panic(err)
	}
	return n
}

func TestCipher(t *testing.T) {
	streamtest.Run(t, config())
}

func TestGenerateKey_Unique(t *testing.T) {
	k1, k2 := GenerateKey(), GenerateKey()
	if k1.Equal(k2) {
		t.Error("two generated keys are identical")
	}
}

func TestGenerateNonce_Unique(t *testing.T) {
	n1, n2 := GenerateNonce(), GenerateNonce()
	if *n1 == *n2 {
		t.Error("two generated nonces are identical")
	}
}

func TestKeyFromBytes_RetainsBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0x42}, KeySize)
	k, err := KeyFromBytes(raw)
	if err != nil {
		t.Fatalf("KeyFromBytes() error = %v", err)
	}
	if !bytes.Equal(k[:], raw) {
		t.Error("key does not hold the constructed bytes")
	}

	if _, err := KeyFromBytes(raw[:KeySize-1]); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short input error = %v, want ErrInvalidLength", err)
	}
}

func TestNonceFromBytes_RetainsBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0x42}, NonceSize)
	n, err := NonceFromBytes(raw)
	if err != nil {
		t.Fatalf("NonceFromBytes() error = %v", err)
	}
	if !bytes.Equal(n[:], raw) {
		t.Error("nonce does not hold the constructed bytes")
	}

	if _, err := NonceFromBytes(raw[:NonceSize-1]); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short input error = %v, want ErrInvalidLength", err)
	}
}

func TestKeyEqual(t *testing.T) {
	k1 := GenerateKey()
	k2 := *k1
	if !k1.Equal(&k2) {
		t.Error("Equal() = false for identical keys")
	}

	k2[0] ^= 0x01
	if k1.Equal(&k2) {
		t.Error("Equal() = true for different keys")
	}
}

func TestKeyWipe(t *testing.T) {
	k := GenerateKey()
	k.Wipe()
	if *k != (Key{}) {
		t.Error("Wipe() left non-zero bytes in the key")
	}
}

func TestNonceIncrement(t *testing.T) {
	var n Nonce
	n.Increment()

	want := Nonce{}
	want[0] = 1
	if n != want {
		t.Errorf("Increment() = %x, want %x", n[:], want[:])
	}

	// Wrap the first byte and carry into the second.
	for i := 0; i < 255; i++ {
		n.Increment()
	}
	want = Nonce{}
	want[1] = 1
	if n != want {
		t.Errorf("after 256 increments = %x, want %x", n[:], want[:])
	}
}

func BenchmarkKeyStream(b *testing.B) {
	streamtest.BenchmarkKeyStream(b, config())
}

func BenchmarkStreamXOR(b *testing.B) {
	streamtest.BenchmarkStreamXOR(b, config())
}

func BenchmarkXORKeyStream(b *testing.B) {
	streamtest.BenchmarkXORKeyStream(b, config())
}
`
