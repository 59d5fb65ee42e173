package fold

// minKnotLength is the shortest interval that can hold two crossing stems
const minKnotLength = 4

// knot is the best pair of crossing stems in an interval [s, e].
//
// The first stem spans [s, j] and pairs [s, i) with (k, j]. The second spans
// [i, e] and pairs [i, k] with (j, e]. With s < i <= k < j < e the arms are
// disjoint and the stems interleave.
type knot struct {
	score   int
	i, k, j int
}

// bestKnot searches every (i, k, j) of the interval [s, e]. The first triple
// in scan order wins ties.
func (a *aligner) bestKnot(s, e int) knot {
	var best knot
	if e-s+1 < minKnotLength {
		return best
	}

	for i := s + 1; i < e; i++ {
		right := a.table(i, e)
		for j := i + 1; j < e; j++ {
			left := a.table(s, j)
			for k := i; k < j; k++ {
				if v := left.at(i-s, j-k) + right.at(k-i+1, e-j); v > best.score {
					best = knot{score: v, i: i, k: k, j: j}
				}
			}
		}
	}

	return best
}
