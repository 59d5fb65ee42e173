package fold

import (
	"fmt"
	"sort"
)

// Pair is a base pair of 1-indexed sequence positions, Left < Right
type Pair struct {
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
}

// newPair makes a Pair from 0-indexed positions
func newPair(l, r int) Pair {
	return Pair{Left: l + 1, Right: r + 1}
}

// String returns the pair as "left right"
func (p Pair) String() string {
	return fmt.Sprintf("%d %d", p.Left, p.Right)
}

// SortPairs sorts pairs by left position, ascending.
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Left != pairs[j].Left {
			return pairs[i].Left < pairs[j].Left
		}
		return pairs[i].Right < pairs[j].Right
	})
}

// Notation sorts the pairs and draws them over a sequence of length n.
// Unpaired positions are '.'. A pair is drawn with '{' and '}' when an earlier
// pair (by left position) ends strictly inside it, and with '(' and ')'
// otherwise.
//
// This is a local check against earlier pairs only: it finds the crossing
// stem of a pseudoknot laid out serially with other structures but is not a
// general classifier for structures nested inside pseudoknots.
func Notation(n int, pairs []Pair) string {
	SortPairs(pairs)

	dots := make([]byte, n)
	for i := range dots {
		dots[i] = '.'
	}

	for i, p := range pairs {
		lb, rb := byte('('), byte(')')
		for _, q := range pairs[:i] {
			if p.Left < q.Right && q.Right < p.Right {
				lb, rb = '{', '}'
				break
			}
		}
		dots[p.Left-1] = lb
		dots[p.Right-1] = rb
	}

	return string(dots)
}
