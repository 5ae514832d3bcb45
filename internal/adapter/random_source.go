package adapter

import (
	"context"
	"math/rand"
	"time"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// ProfileSource produces profiles over a given universe without reading the
// disk. It backs the playground's "randomize" action.
type ProfileSource interface {
	// RandomProfile returns a profile with one uniformly shuffled ranking
	// per voter over the supplied universe. The same non-zero seed always
	// yields the same profile; seed zero draws from the clock.
	RandomProfile(ctx context.Context, universe []m.Alternative, voters int, seed int64) (m.Profile, error)
}

type randomProfileSource struct{}

// NewRandomProfileSource returns the default ProfileSource.
func NewRandomProfileSource() ProfileSource {
	return &randomProfileSource{}
}

func (s *randomProfileSource) RandomProfile(ctx context.Context, universe []m.Alternative, voters int, seed int64) (m.Profile, error) {
	if err := ctx.Err(); err != nil {
		return m.Profile{}, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))

	profile := m.Profile{
		Alternatives: append([]m.Alternative(nil), universe...),
		Rankings:     make([]m.Ranking, voters),
	}

	for v := range profile.Rankings {
		ranking := make(m.Ranking, len(universe))
		copy(ranking, universe)

		rng.Shuffle(len(ranking), func(i, j int) {
			ranking[i], ranking[j] = ranking[j], ranking[i]
		})

		profile.Rankings[v] = ranking
	}

	return profile, nil
}
