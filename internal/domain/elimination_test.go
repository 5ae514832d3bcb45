package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

func TestSuccessiveCore_UnanimousProfile(t *testing.T) {
	// Identical rankings a>b>c>d for two voters: each round removes the
	// voter's 3 least-preferred duplicated items, leaving only "a".
	profile := m.Profile{
		Alternatives: []m.Alternative{"a", "b", "c", "d"},
		Rankings: []m.Ranking{
			{"a", "b", "c", "d"},
			{"a", "b", "c", "d"},
		},
	}

	survivors, err := SuccessiveCore(profile)
	require.NoError(t, err)
	assert.Equal(t, []m.Alternative{"a"}, survivors)
}

func TestSuccessiveCore_CondorcetCycleKeepsAll(t *testing.T) {
	profile := m.Profile{
		Alternatives: []m.Alternative{"a", "b", "c"},
		Rankings: []m.Ranking{
			{"a", "b", "c"},
			{"b", "c", "a"},
			{"c", "a", "b"},
		},
	}

	survivors, err := SuccessiveCore(profile)
	require.NoError(t, err)
	assert.Equal(t, []m.Alternative{"a", "b", "c"}, survivors)
}

func TestSuccessiveCore_SingleAlternative(t *testing.T) {
	// m=1 gives zero veto power: no round removes anything.
	profile := m.Profile{
		Alternatives: []m.Alternative{"a"},
		Rankings:     []m.Ranking{{"a"}, {"a"}, {"a"}},
	}

	survivors, err := SuccessiveCore(profile)
	require.NoError(t, err)
	assert.Equal(t, []m.Alternative{"a"}, survivors)
}

func TestSuccessiveCore_SurvivorsNeverEmpty(t *testing.T) {
	profile := m.Profile{
		Alternatives: []m.Alternative{"a", "b", "c", "d"},
		Rankings: []m.Ranking{
			{"a", "b", "c", "d"},
			{"d", "c", "b", "a"},
		},
	}

	survivors, err := SuccessiveCore(profile)
	require.NoError(t, err)
	assert.NotEmpty(t, survivors)
	assert.Subset(t, profile.Alternatives, survivors)
}

func TestSuccessiveCore_UnknownSymbolIsUncomputable(t *testing.T) {
	profile := m.Profile{
		Alternatives: []m.Alternative{"a", "b"},
		Rankings: []m.Ranking{
			{"a", "z"},
		},
	}

	survivors, err := SuccessiveCore(profile)
	assert.ErrorIs(t, err, m.ErrNotComputable)
	assert.Empty(t, survivors)
}

func TestSuccessiveCore_DegenerateInput(t *testing.T) {
	t.Run("no alternatives", func(t *testing.T) {
		survivors, err := SuccessiveCore(m.Profile{Rankings: []m.Ranking{{}}})
		require.NoError(t, err)
		assert.Empty(t, survivors)
	})

	t.Run("no voters", func(t *testing.T) {
		survivors, err := SuccessiveCore(m.Profile{Alternatives: []m.Alternative{"a", "b"}})
		require.NoError(t, err)
		assert.Empty(t, survivors)
	})
}
