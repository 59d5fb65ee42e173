package fold

// hairpin is the best single stem of an interval
type hairpin struct {
	score int

	// split is the number of leftmost positions in the stem's left arm,
	// the remaining positions of the interval form the right arm
	split int
}

// bestHairpin scans every split of the interval [s, e] into a left and right
// arm. The first (smallest) split wins ties.
func (a *aligner) bestHairpin(s, e int) hairpin {
	t := a.table(s, e)

	var h hairpin
	for k := 0; k <= t.l; k++ {
		if v := t.at(k, t.l-k); v > h.score {
			h = hairpin{score: v, split: k}
		}
	}
	return h
}
