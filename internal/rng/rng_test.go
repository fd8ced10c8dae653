package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := New(12345), New(12345)
	for range 100 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSeed(t *testing.T) {
	assert.Equal(t, uint64(7), Seed(7))
	assert.NotZero(t, Seed(0))
}

func TestDerive(t *testing.T) {
	seen := make(map[uint64]int)
	for n := range 16 {
		d := Derive(42, n)
		if prev, ok := seen[d]; ok {
			t.Fatalf("Derive(42, %d) collides with n=%d", n, prev)
		}
		seen[d] = n
	}
	assert.Equal(t, Derive(42, 3), Derive(42, 3))
	assert.NotEqual(t, Derive(42, 0), Derive(43, 0))
}

func TestCoinFlip(t *testing.T) {
	assert.True(t, CoinFlip(&Fixed{Values: []int{0}}))
	assert.False(t, CoinFlip(&Fixed{Values: []int{1}}))

	heads := 0
	src := New(1)
	for range 10000 {
		if CoinFlip(src) {
			heads++
		}
	}
	assert.InDelta(t, 5000, heads, 300)
}

func TestFixed(t *testing.T) {
	f := &Fixed{Values: []int{0, 1, 5, -3}}
	assert.Equal(t, []int{0, 1, 1, 1, 0}, []int{f.IntN(2), f.IntN(2), f.IntN(2), f.IntN(2), f.IntN(2)})

	empty := &Fixed{}
	assert.Equal(t, 0, empty.IntN(10))
	assert.Panics(t, func() { empty.IntN(0) })
}

func TestFixed_InRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vals := rapid.SliceOfN(rapid.Int(), 1, 10).Draw(t, "values")
		n := rapid.IntRange(1, 100).Draw(t, "n")
		f := &Fixed{Values: vals}
		for range len(vals) * 2 {
			v := f.IntN(n)
			if v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d out of range", n, v)
			}
		}
	})
}
