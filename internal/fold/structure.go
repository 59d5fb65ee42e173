package fold

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Kind is the shape chosen for an interval
type Kind uint8

const (
	// Hairpin is a single stem-loop
	Hairpin Kind = iota

	// Pseudoknot is two crossing stems
	Pseudoknot

	// Split is two independent structures side by side
	Split
)

// String returns the Kind's name
func (k Kind) String() string {
	switch k {
	case Hairpin:
		return "hairpin"
	case Pseudoknot:
		return "pseudoknot"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Decision records how the best structure of an interval was built.
type Decision struct {
	Kind Kind

	// K is the split point of a Split: [s, K] and [K+1, e].
	// For a Pseudoknot it is the end of the second stem's left arm.
	K int

	// I and J are the start of the second stem and the end of the
	// first stem of a Pseudoknot
	I, J int
}

// span is an interval [s, e] of 0-indexed positions
type span struct {
	s, e int
}

// engine holds every table of one fold. Each table cell has a single writer
// and is only read once the phase that writes it has finished.
type engine struct {
	n       int
	threads int
	align   *aligner

	hairpins  []hairpin
	knots     []knot
	best      []int
	decisions []Decision
}

func newEngine(sc *Scorer, threads int) *engine {
	if threads < 1 {
		threads = 1
	}

	n := sc.Len()
	return &engine{
		n:         n,
		threads:   threads,
		align:     newAligner(sc),
		hairpins:  make([]hairpin, n*n),
		knots:     make([]knot, n*n),
		best:      make([]int, n*n),
		decisions: make([]Decision, n*n),
	}
}

// cell is the index of interval [s, e] in the per-interval tables
func (en *engine) cell(s, e int) int {
	return s*en.n + e
}

// spans returns the intervals of length l
func (en *engine) spans(l int) []span {
	out := make([]span, 0, en.n-l+1)
	for s := 0; s+l-1 < en.n; s++ {
		out = append(out, span{s, s + l - 1})
	}
	return out
}

// fill computes every table in three phases: the alignment of each interval,
// then each interval's best hairpin and pseudoknot, then the structures by
// increasing length.
func (en *engine) fill(ctx context.Context) error {
	var all []span
	for l := 1; l <= en.n; l++ {
		all = append(all, en.spans(l)...)
	}

	if err := en.wave(ctx, all, func(sp span) {
		en.align.fill(sp.s, sp.e)
	}); err != nil {
		return err
	}

	if err := en.wave(ctx, all, func(sp span) {
		c := en.cell(sp.s, sp.e)
		en.hairpins[c] = en.align.bestHairpin(sp.s, sp.e)
		en.knots[c] = en.align.bestKnot(sp.s, sp.e)
	}); err != nil {
		return err
	}

	for l := 1; l <= en.n; l++ {
		if err := en.wave(ctx, en.spans(l), en.compose); err != nil {
			return err
		}
	}

	return nil
}

// compose picks the best of the interval's hairpin, its pseudoknot, or a split
// into two shorter intervals. Only a strictly better option replaces the
// current one.
func (en *engine) compose(sp span) {
	s, e := sp.s, sp.e
	c := en.cell(s, e)

	best, d := en.hairpins[c].score, Decision{Kind: Hairpin}

	if k := en.knots[c]; k.score > best {
		best, d = k.score, Decision{Kind: Pseudoknot, I: k.i, K: k.k, J: k.j}
	}

	for k := s; k < e; k++ {
		if v := en.best[en.cell(s, k)] + en.best[en.cell(k+1, e)]; v > best {
			best, d = v, Decision{Kind: Split, K: k}
		}
	}

	en.best[c] = best
	en.decisions[c] = d
}

// wave runs fn over the spans on at most en.threads goroutines and waits for
// all of them. It stops scheduling once ctx is done.
func (en *engine) wave(ctx context.Context, spans []span, fn func(span)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(en.threads)

	for _, sp := range spans {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(sp)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
