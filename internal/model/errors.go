package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRanking is the umbrella error for any ranking that is not a
// permutation of the alternative set. The specific failures below wrap it,
// so errors.Is(err, ErrInvalidRanking) matches all of them.
var ErrInvalidRanking = errors.New("pvc: invalid ranking")

var (
	// ErrIncompleteRanking indicates the ranking length does not match the universe.
	ErrIncompleteRanking = fmt.Errorf("%w: not every alternative is ranked exactly once", ErrInvalidRanking)
	// ErrEmptyEntry indicates a missing or empty ranking entry.
	ErrEmptyEntry = fmt.Errorf("%w: empty entry", ErrInvalidRanking)
	// ErrDuplicateAlternative indicates an alternative appears more than once.
	ErrDuplicateAlternative = fmt.Errorf("%w: alternative ranked more than once", ErrInvalidRanking)
	// ErrUnknownAlternative indicates a symbol outside the declared universe.
	ErrUnknownAlternative = fmt.Errorf("%w: alternative not in the universe", ErrInvalidRanking)
)

var (
	// ErrNotComputable indicates the requested result cannot be derived from
	// the given profile. Computation refuses rather than best-guessing.
	ErrNotComputable = errors.New("pvc: result not computable for this profile")
	// ErrTooManyVoters indicates the voter count exceeds the configured bound
	// on the exponential coalition search.
	ErrTooManyVoters = errors.New("pvc: voter count exceeds the configured bound")
	// ErrAlphabetExhausted indicates more alternatives were requested than the
	// alphabet can label.
	ErrAlphabetExhausted = errors.New("pvc: alternative alphabet exhausted")
)

// RankingError reports which voter's ranking failed validation, so a front
// end can flag the offending column.
type RankingError struct {
	Voter int
	Err   error
}

func (e *RankingError) Error() string {
	return fmt.Sprintf("voter %d: %v", e.Voter, e.Err)
}

func (e *RankingError) Unwrap() error {
	return e.Err
}
