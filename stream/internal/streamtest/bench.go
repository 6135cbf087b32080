package streamtest

import (
	"testing"

	"github.com/ebfe/sodiumoxide/randombytes"
)

// benchSizes is the ladder of message sizes each benchmark iteration
// walks, from the empty message up to 4 KiB.
var benchSizes = []int{0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096}

func benchBytes() int64 {
	var total int64
	for _, n := range benchSizes {
		total += int64(n)
	}
	return total
}

// BenchmarkKeyStream measures raw keystream generation across the size
// ladder.
func BenchmarkKeyStream(b *testing.B, c Config) {
	key := randombytes.Bytes(c.KeySize)
	nonce := randombytes.Bytes(c.NonceSize)

	b.SetBytes(benchBytes())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, n := range benchSizes {
			c.KeyStream(n, nonce, key)
		}
	}
}

// BenchmarkStreamXOR measures allocating encryption across the size
// ladder.
func BenchmarkStreamXOR(b *testing.B, c Config) {
	key := randombytes.Bytes(c.KeySize)
	nonce := randombytes.Bytes(c.NonceSize)
	msg := randombytes.Bytes(benchSizes[len(benchSizes)-1])

	b.SetBytes(benchBytes())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, n := range benchSizes {
			c.StreamXOR(msg[:n], nonce, key)
		}
	}
}

// BenchmarkXORKeyStream measures in-place encryption across the size
// ladder.
func BenchmarkXORKeyStream(b *testing.B, c Config) {
	key := randombytes.Bytes(c.KeySize)
	nonce := randombytes.Bytes(c.NonceSize)
	buf := randombytes.Bytes(benchSizes[len(benchSizes)-1])

	b.SetBytes(benchBytes())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, n := range benchSizes {
			c.XORKeyStream(buf[:n], buf[:n], nonce, key)
		}
	}
}
