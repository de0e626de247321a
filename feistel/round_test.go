package feistel

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestMixMatchesDefinition(t *testing.T) {
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		v, k := r.Uint64(), r.Uint64()

		p := new(big.Int).SetUint64(v ^ k)
		p.Mul(p, big.NewInt(roundMul))
		p.Mod(p, mod)
		tv := p.Uint64()
		if tv != (v^k)*roundMul {
			t.Fatalf("multiply of %x does not wrap mod 2^64", v^k)
		}

		want := (tv >> 23) | (tv << 41)
		if got := mix(v, k); got != want {
			t.Fatalf("mix(%x, %x) = %x, want %x", v, k, got, want)
		}
	}
}

func TestMixBijective(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for _, key := range []uint64{0, 1, Hash([]byte("test")), ^uint64(0)} {
		seen := make(map[uint64]uint64, 1<<14)
		for i := 0; i < 1<<14; i++ {
			v := r.Uint64()
			out := mix(v, key)
			if prev, ok := seen[out]; ok && prev != v {
				t.Fatalf("mix collision for key %x: %x and %x -> %x", key, prev, v, out)
			}
			seen[out] = v
		}
	}
}
