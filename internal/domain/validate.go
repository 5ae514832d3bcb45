package domain

import (
	"fmt"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// ValidateRanking checks that ranking is a permutation of universe: same
// length, no empty entries, no duplicates, no foreign symbols. It returns
// nil for a valid ranking and a wrapped model.ErrInvalidRanking otherwise.
// It is safe to call on partial, in-progress rankings and never panics.
func ValidateRanking(ranking m.Ranking, universe []m.Alternative) error {
	if len(ranking) != len(universe) {
		return fmt.Errorf("%w: got %d entries, want %d", m.ErrIncompleteRanking, len(ranking), len(universe))
	}

	known := make(map[m.Alternative]bool, len(universe))
	for _, alt := range universe {
		known[alt] = true
	}

	seen := make(map[m.Alternative]bool, len(ranking))

	for pos, alt := range ranking {
		if alt == "" {
			return fmt.Errorf("%w at position %d", m.ErrEmptyEntry, pos)
		}

		if !known[alt] {
			return fmt.Errorf("%w: %q at position %d", m.ErrUnknownAlternative, alt, pos)
		}

		if seen[alt] {
			return fmt.Errorf("%w: %q at position %d", m.ErrDuplicateAlternative, alt, pos)
		}

		seen[alt] = true
	}

	return nil
}

// ValidateProfile validates every voter's ranking independently against the
// profile's universe. The first failure is reported as a model.RankingError
// carrying the offending voter index.
func ValidateProfile(profile m.Profile) error {
	for v, ranking := range profile.Rankings {
		if err := ValidateRanking(ranking, profile.Alternatives); err != nil {
			return &m.RankingError{Voter: v, Err: err}
		}
	}

	return nil
}
