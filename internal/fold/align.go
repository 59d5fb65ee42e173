package fold

// move is the step that produced an alignment cell's score
type move uint8

const (
	// skipLeft drops the last position of the left arm
	skipLeft move = iota

	// skipRight drops the last position of the right arm
	skipRight

	// match pairs the last positions of both arms
	match
)

// aligner owns the alignment tables of every interval of a sequence.
//
// The table of interval [s, e] with length l aligns the interval read forward
// from s against itself read backward from e. Cell (i, j) is the best score
// from pairing some of the first i positions with some of the last j positions,
// in order. Only cells with i+j <= l exist, so the two arms never share or
// cross a position.
//
// All tables share one arena. Interval [s, e] starts at offsets[s*n+e] and
// stores its rows back to back, row i holding j = 0..l-i.
type aligner struct {
	n       int
	sc      *Scorer
	offsets []int
	scores  []int
	moves   []move
}

// newAligner sizes the arena for every interval of the scored sequence.
func newAligner(sc *Scorer) *aligner {
	n := sc.Len()
	a := &aligner{n: n, sc: sc, offsets: make([]int, n*n)}

	size := 0
	for s := 0; s < n; s++ {
		for e := s; e < n; e++ {
			a.offsets[s*n+e] = size
			size += tableCells(e - s + 1)
		}
	}

	a.scores = make([]int, size)
	a.moves = make([]move, size)
	return a
}

// cells is the size of the arena
func (a *aligner) cells() int {
	return len(a.scores)
}

// tableCells is the number of cells with i+j <= l.
func tableCells(l int) int {
	return (l + 1) * (l + 2) / 2
}

// fill computes the table of [s, e]. Ties go to skipping the left position,
// then to skipping the right one. A match is only taken when it is strictly
// better, so a zero score pair is never matched.
func (a *aligner) fill(s, e int) {
	t := a.table(s, e)

	for i := 1; i <= t.l; i++ {
		for j := 1; i+j <= t.l; j++ {
			best, mv := a.scores[t.idx(i-1, j)], skipLeft

			if v := a.scores[t.idx(i, j-1)]; v > best {
				best, mv = v, skipRight
			}

			if v := a.scores[t.idx(i-1, j-1)] + a.sc.Score(s+i-1, e-j+1); v > best {
				best, mv = v, match
			}

			c := t.idx(i, j)
			a.scores[c] = best
			a.moves[c] = mv
		}
	}
}

// table returns a view of the interval [s, e].
func (a *aligner) table(s, e int) table {
	return table{a: a, s: s, e: e, l: e - s + 1, base: a.offsets[s*a.n+e]}
}

// table is a read-only view of one interval's alignment
type table struct {
	a    *aligner
	s, e int
	l    int
	base int
}

// idx returns the arena index of cell (i, j).
func (t table) idx(i, j int) int {
	return t.base + i*(t.l+1) - i*(i-1)/2 + j
}

// at returns the best score of aligning the first i positions against the last j.
func (t table) at(i, j int) int {
	return t.a.scores[t.idx(i, j)]
}

// pairs walks the moves back from cell (i, j), appending each matched pair to out.
func (t table) pairs(i, j int, out []Pair) []Pair {
	for i > 0 && j > 0 {
		switch t.a.moves[t.idx(i, j)] {
		case skipLeft:
			i--
		case skipRight:
			j--
		default:
			out = append(out, newPair(t.s+i-1, t.e-j+1))
			i--
			j--
		}
	}
	return out
}
