// Package model defines the data structures for proportional veto core analysis.
package model

import (
	"math/bits"
	"strconv"
	"strings"
)

// Path represents a file system path.
type Path string

// Alternative is one of the candidate options being voted on. Alternatives
// within one profile are pairwise distinct and drawn from a fixed alphabet.
type Alternative string

// Ranking is one voter's strict preference order over all alternatives,
// most-preferred first. A valid ranking is a permutation of the universe.
type Ranking []Alternative

// Profile holds the complete collection of voter rankings over a shared
// universe of alternatives. Rankings[v] is voter v's ranking.
type Profile struct {
	Alternatives []Alternative
	Rankings     []Ranking
}

// M returns the number of alternatives.
func (p Profile) M() int {
	return len(p.Alternatives)
}

// N returns the number of voters.
func (p Profile) N() int {
	return len(p.Rankings)
}

// Index returns the position of alt in the universe, or -1 if absent.
func (p Profile) Index(alt Alternative) int {
	for i, a := range p.Alternatives {
		if a == alt {
			return i
		}
	}

	return -1
}

// Coalition is a set of voters encoded as a bitmask over voter indices.
// The zero value is the empty coalition.
type Coalition uint64

// Contains reports whether voter v belongs to the coalition.
func (c Coalition) Contains(v int) bool {
	return c&(1<<uint(v)) != 0
}

// Size returns the number of voters in the coalition.
func (c Coalition) Size() int {
	return bits.OnesCount64(uint64(c))
}

// Empty reports whether the coalition has no members.
func (c Coalition) Empty() bool {
	return c == 0
}

// Members returns the voter indices in ascending order.
func (c Coalition) Members() []int {
	members := make([]int, 0, c.Size())

	for v := 0; c>>uint(v) != 0; v++ {
		if c.Contains(v) {
			members = append(members, v)
		}
	}

	return members
}

// String renders the coalition as a set of voter indices, e.g. "{0, 2}".
func (c Coalition) String() string {
	var b strings.Builder

	b.WriteByte('{')

	for i, v := range c.Members() {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Itoa(v))
	}

	b.WriteByte('}')

	return b.String()
}
