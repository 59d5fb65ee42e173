// Package fold finds the highest scoring secondary structure of an RNA sequence.
//
// Structures are built from hairpins (one stem) and pseudoknots (two crossing
// stems) laid out side by side. Structures nested inside other structures are
// not considered. A structure's score is the sum of its pairs' scores, from
// the pairing rules in config.PairingConfig.
//
// Every interval of the sequence gets an alignment table of its left arm against
// its right arm. The best hairpin of an interval is read off its own table,
// the best pseudoknot off the tables of two overlapping intervals, and the
// best structure of an interval is the best of those or of two shorter
// intervals side by side. Time is O(n^5) and space O(n^4), hence MaxSeqLength.
package fold

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjtimmons/knotfold/config"
)

// MaxSeqLength is the longest sequence that can be folded
const MaxSeqLength = 100

// ErrSeqTooLong is returned for sequences longer than MaxSeqLength
var ErrSeqTooLong = errors.New("sequence too long")

// Result is the best structure of a sequence
type Result struct {
	// Seq is the folded sequence
	Seq string

	// Score is the summed score of all pairs in the structure
	Score int

	// Hairpin is the best score of a single stem over the whole sequence
	Hairpin int

	// Pseudoknot is the best score of two crossing stems over the whole sequence
	Pseudoknot int

	// Decision is how the whole sequence's structure was built
	Decision Decision

	// Pairs of the structure, sorted by left position
	Pairs []Pair

	// Notation is the bracket notation of Pairs
	Notation string

	// Cells is the number of alignment cells computed
	Cells int
}

// Fold returns the best structure of seq. Sequences longer than MaxSeqLength are
// rejected before anything is allocated. The pairing rules come from conf and the
// tables are filled on conf.Threads goroutines; the result does not depend on the
// thread count.
func Fold(ctx context.Context, seq string, conf *config.Config) (*Result, error) {
	if len(seq) > MaxSeqLength {
		return nil, fmt.Errorf("%w: %d bp is over the %d bp limit", ErrSeqTooLong, len(seq), MaxSeqLength)
	}

	en := newEngine(NewScorer(seq, conf.Pairing), conf.Threads)
	if err := en.fill(ctx); err != nil {
		return nil, fmt.Errorf("failed to fold sequence: %w", err)
	}

	res := &Result{
		Seq:   seq,
		Pairs: en.restore(),
		Cells: en.align.cells(),
	}

	if en.n > 0 {
		c := en.cell(0, en.n-1)
		res.Score = en.best[c]
		res.Hairpin = en.hairpins[c].score
		res.Pseudoknot = en.knots[c].score
		res.Decision = en.decisions[c]
	}

	res.Notation = Notation(en.n, res.Pairs)

	return res, nil
}
