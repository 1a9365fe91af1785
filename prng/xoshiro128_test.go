package prng

import (
	"testing"

	logging "github.com/ipfs/go-log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUp(level string) {
	logging.Logger("seedrsa")
	if err := logging.SetLogLevel("seedrsa", level); err != nil {
		panic(err)
	}
}

func TestNextIsDeterministic(t *testing.T) {
	setUp("info")
	seed := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	s1 := NewState(seed)
	s2 := NewState(seed)

	for i := 0; i < 100; i++ {
		assert.Equal(t, s1.Next(), s2.Next(), "draw %d diverged", i)
	}
}

func TestNextMatchesFrozenVector(t *testing.T) {
	setUp("info")
	seed := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	want := []uint32{0xad43da12, 0x61f9f6c6, 0x0b42177a, 0x592c0165, 0x336f05bb}

	s := NewState(seed)
	for i, w := range want {
		require.Equal(t, w, s.Next(), "word %d", i)
	}
}

func TestAllZeroSeedIsAFixedPoint(t *testing.T) {
	setUp("info")
	// This is a documented property of xoshiro128**, not a defect in this
	// package: the state transition is linear over GF(2) aside from the
	// output scrambler, so the all-zero state maps to itself forever and
	// every draw is 0. seedrsa.Generate must be able to unwind cleanly via
	// context cancellation for exactly this seed; see
	// seedrsa/driver_test.go's cancellation test.
	seed := make([]byte, SeedLen)
	s := NewState(seed)
	for i := 0; i < 8; i++ {
		assert.Zero(t, s.Next(), "draw %d: zero state must stay fixed", i)
	}
}

func TestNewStatePanicsOnShortSeed(t *testing.T) {
	setUp("info")
	assert.Panics(t, func() {
		NewState(make([]byte, SeedLen-1))
	})
}
