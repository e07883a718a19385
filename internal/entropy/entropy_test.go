package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(s Seed, n int) []uint64 {
	src := s.Source()
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestSource_IsReproducible(t *testing.T) {
	t.Parallel()

	s := ForOrdinal(42, 3)
	assert.Equal(t, draw(s, 16), draw(s, 16))
}

func TestSource_OrdinalsDiverge(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, draw(ForOrdinal(42, 1), 8), draw(ForOrdinal(42, 2), 8))
}

func TestSource_BasesDiverge(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, draw(ForOrdinal(1, 1), 8), draw(ForOrdinal(2, 1), 8))
}

func TestForOrdinal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Seed{Base: 9, Stream: 4}, ForOrdinal(9, 4))
	assert.Equal(t, "9/4", ForOrdinal(9, 4).String())
	require.Panics(t, func() { ForOrdinal(9, -1) })
}
