package domain

import (
	"fmt"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// alphabet labels alternatives; its length caps the universe size.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// GenerateAlternatives returns the first count symbols of the alphabet as
// the ordered universe of alternatives. count of zero yields an empty
// universe; count beyond the alphabet fails.
func GenerateAlternatives(count int) ([]m.Alternative, error) {
	if count < 0 || count > len(alphabet) {
		return nil, fmt.Errorf("%w: cannot label %d alternatives with %d symbols", m.ErrAlphabetExhausted, count, len(alphabet))
	}

	universe := make([]m.Alternative, count)
	for i := range universe {
		universe[i] = m.Alternative(alphabet[i : i+1])
	}

	return universe, nil
}
