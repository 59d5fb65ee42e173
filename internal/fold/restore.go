package fold

// restore walks the decisions back from the full sequence and returns
// every base pair of the best structure, unsorted.
//
// Intervals wait on an explicit stack, so the walk never holds more than
// n of them at once.
func (en *engine) restore() []Pair {
	pairs := []Pair{}
	if en.n == 0 {
		return pairs
	}

	stack := []span{{0, en.n - 1}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s, e := sp.s, sp.e

		switch d := en.decisions[en.cell(s, e)]; d.Kind {
		case Hairpin:
			k := en.hairpins[en.cell(s, e)].split
			pairs = en.align.table(s, e).pairs(k, e-s+1-k, pairs)
		case Pseudoknot:
			pairs = en.align.table(s, d.J).pairs(d.I-s, d.J-d.K, pairs)
			pairs = en.align.table(d.I, e).pairs(d.K-d.I+1, e-d.J, pairs)
		case Split:
			// single positions hold no pairs
			if d.K+1 < e {
				stack = append(stack, span{d.K + 1, e})
			}
			if s < d.K {
				stack = append(stack, span{s, d.K})
			}
		}
	}

	return pairs
}
