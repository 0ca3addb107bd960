package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty algorithm selects the carver", func(t *testing.T) {
		withDefault, err := New(12, 9, "", seeded(8))
		require.NoError(t, err)
		carver, err := New(12, 9, AlgorithmCarver, seeded(8))
		require.NoError(t, err)

		assert.Equal(t, Render(carver), Render(withDefault))
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := New(12, 9, "kruskal", seeded(8))
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := New(0, 9, AlgorithmCarver, seeded(8))
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	for _, algorithm := range []string{AlgorithmCarver, AlgorithmWilson} {
		t.Run(algorithm+" is deterministic", func(t *testing.T) {
			first, err := New(DefaultWidth, DefaultHeight, algorithm, seeded(99))
			require.NoError(t, err)
			second, err := New(DefaultWidth, DefaultHeight, algorithm, seeded(99))
			require.NoError(t, err)

			assert.Equal(t, Render(first), Render(second))
		})
	}
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGrid(MinWidth, MinHeight)
	require.NoError(t, err)

	gen, err := NewGenerator(AlgorithmCarver, g, seeded(1))
	require.NoError(t, err)
	assert.IsType(t, &Builder{}, gen)

	gen, err = NewGenerator(AlgorithmWilson, g, seeded(1))
	require.NoError(t, err)
	assert.IsType(t, &Wilson{}, gen)
}

func TestWilsonPerfectMaze(t *testing.T) {
	sizes := []struct{ width, height int }{
		{1, 1},
		{2, 3},
		{MinWidth, MinHeight},
		{DefaultWidth, DefaultHeight},
		{MaxWidth, MaxHeight},
	}

	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed_%d", size.width, size.height, seed), func(t *testing.T) {
				g, err := NewGrid(size.width, size.height)
				require.NoError(t, err)

				NewWilson(g, seeded(seed)).Build()
				requirePerfect(t, g)
			})
		}
	}
}
