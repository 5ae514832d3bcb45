package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

func TestRandomProfileSource_RankingsArePermutations(t *testing.T) {
	universe := []m.Alternative{"a", "b", "c", "d", "e"}

	profile, err := NewRandomProfileSource().RandomProfile(context.Background(), universe, 4, 7)
	require.NoError(t, err)

	assert.Equal(t, universe, profile.Alternatives)
	require.Len(t, profile.Rankings, 4)

	for v, ranking := range profile.Rankings {
		require.Len(t, ranking, len(universe), "voter %d", v)

		seen := make(map[m.Alternative]bool, len(ranking))
		for _, alt := range ranking {
			assert.Contains(t, universe, alt)
			assert.False(t, seen[alt], "voter %d ranks %q twice", v, alt)
			seen[alt] = true
		}
	}
}

func TestRandomProfileSource_SeededRunsAreReproducible(t *testing.T) {
	universe := []m.Alternative{"a", "b", "c", "d"}
	source := NewRandomProfileSource()

	first, err := source.RandomProfile(context.Background(), universe, 3, 42)
	require.NoError(t, err)

	second, err := source.RandomProfile(context.Background(), universe, 3, 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRandomProfileSource_DoesNotAliasUniverse(t *testing.T) {
	universe := []m.Alternative{"a", "b", "c"}

	profile, err := NewRandomProfileSource().RandomProfile(context.Background(), universe, 1, 1)
	require.NoError(t, err)

	profile.Alternatives[0] = "z"
	assert.Equal(t, m.Alternative("a"), universe[0])
}

func TestRandomProfileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRandomProfileSource().RandomProfile(ctx, []m.Alternative{"a"}, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
