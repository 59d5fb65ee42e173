package fold

import "github.com/jjtimmons/knotfold/config"

// Scorer holds the pairing score of every two positions in a sequence.
// A score of zero means the two positions cannot pair.
type Scorer struct {
	n      int
	scores []int
}

// NewScorer builds the symmetric score matrix of seq under the pairing rules.
// Symbols outside of ACGU pair with nothing.
func NewScorer(seq string, p config.PairingConfig) *Scorer {
	n := len(seq)
	sc := &Scorer{n: n, scores: make([]int, n*n)}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := pairScore(seq[i], seq[j], p)
			sc.scores[i*n+j] = s
			sc.scores[j*n+i] = s
		}
	}

	return sc
}

// Score returns the score of pairing positions i and j (0-indexed).
func (sc *Scorer) Score(i, j int) int {
	return sc.scores[i*sc.n+j]
}

// Len is the length of the scored sequence.
func (sc *Scorer) Len() int {
	return sc.n
}

func pairScore(a, b byte, p config.PairingConfig) int {
	switch {
	case a == 'A' && b == 'U', a == 'U' && b == 'A',
		a == 'C' && b == 'G', a == 'G' && b == 'C':
		return p.WatsonCrickScore
	case p.Wobble && (a == 'G' && b == 'U' || a == 'U' && b == 'G'):
		return p.WobbleScore
	default:
		return 0
	}
}
