package fold

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjtimmons/knotfold/config"
)

const (
	hairpinExample    = "ACGUGCCACGAUUCAACGUGGCACAG"
	pseudoknotExample = "UCGACUGUAAAGCGGCGACUUUCAGUCGCUCUUUUUGUCGCGCGC"
)

func testConfig(threads int) *config.Config {
	return &config.Config{
		Pairing: config.PairingConfig{WatsonCrickScore: 1, WobbleScore: 1},
		Threads: threads,
	}
}

func wobbleConfig(score int) *config.Config {
	c := testConfig(4)
	c.Pairing.Wobble = true
	c.Pairing.WobbleScore = score
	return c
}

func randomSeq(r *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte("ACGU"[r.Intn(4)])
	}
	return sb.String()
}

func TestFold_examples(t *testing.T) {
	tests := []struct {
		name         string
		seq          string
		conf         *config.Config
		wantScore    int
		wantNotation string
	}{
		{
			"hairpin example",
			hairpinExample,
			testConfig(4),
			11,
			".(((((((((.((.)))))))))).)",
		},
		{
			"pseudoknot example",
			pseudoknotExample,
			testConfig(4),
			18,
			".()({)}()(({{{{{{{{{)).}}}}}}.}.....}.}((()))",
		},
		{
			"pseudoknot example with wobble pairs",
			pseudoknotExample,
			wobbleConfig(2),
			26,
			"(.(..(((((((.((((..(({.))).).).))))))).))).}.",
		},
		{
			"simple stem loop",
			"GGGAAACCC",
			testConfig(1),
			3,
			"(((...)))",
		},
		{
			"crossing stems",
			"GGAACCUU",
			testConfig(2),
			4,
			"(({{))}}",
		},
		{
			"unknown symbols are skipped",
			"AXU",
			testConfig(1),
			1,
			"(.)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Fold(context.Background(), tt.seq, tt.conf)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantNotation, res.Notation)
			assert.Len(t, res.Notation, len(tt.seq))
		})
	}
}

func TestFold_hairpinExample(t *testing.T) {
	res, err := Fold(context.Background(), hairpinExample, testConfig(4))
	require.NoError(t, err)

	assert.Equal(t, Hairpin, res.Decision.Kind)
	assert.NotContains(t, res.Notation, "{")
	assert.NotContains(t, res.Notation, "}")
	assert.Equal(t, []Pair{
		{2, 26}, {3, 24}, {4, 23}, {5, 22}, {6, 21}, {7, 20},
		{8, 19}, {9, 18}, {10, 17}, {12, 16}, {13, 15},
	}, res.Pairs)
}

func TestFold_pseudoknotExample(t *testing.T) {
	res, err := Fold(context.Background(), pseudoknotExample, testConfig(4))
	require.NoError(t, err)

	assert.Contains(t, res.Notation, "{")
	assert.Contains(t, res.Notation, "}")
	assert.Equal(t, 14, res.Hairpin)
	assert.Equal(t, 17, res.Pseudoknot)
	assert.Equal(t, Decision{Kind: Split, K: 0}, res.Decision)
	assert.Equal(t, []Pair{
		{2, 3}, {4, 6}, {5, 7}, {8, 9}, {10, 22}, {11, 21},
		{12, 39}, {13, 37}, {14, 31}, {15, 29}, {16, 28}, {17, 27},
		{18, 26}, {19, 25}, {20, 24}, {40, 45}, {41, 44}, {42, 43},
	}, res.Pairs)
}

func TestFold_crossingStemsArePseudoknot(t *testing.T) {
	res, err := Fold(context.Background(), "GGAACCUU", testConfig(1))
	require.NoError(t, err)

	assert.Equal(t, Decision{Kind: Pseudoknot, I: 2, K: 3, J: 5}, res.Decision)
	assert.Equal(t, []Pair{{1, 6}, {2, 5}, {3, 8}, {4, 7}}, res.Pairs)
}

func TestFold_properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for n := 0; n < 40; n++ {
		seq := randomSeq(r, r.Intn(30))
		conf := testConfig(1 + n%4)

		res, err := Fold(context.Background(), seq, conf)
		require.NoError(t, err, seq)

		// the composer never does worse than either shape over the whole sequence
		assert.GreaterOrEqual(t, res.Score, res.Hairpin, seq)
		assert.GreaterOrEqual(t, res.Score, res.Pseudoknot, seq)

		// with unit scores, every pair adds exactly one
		assert.Len(t, res.Pairs, res.Score, seq)

		sc := NewScorer(seq, conf.Pairing)
		used := make(map[int]bool)
		for _, p := range res.Pairs {
			assert.Less(t, p.Left, p.Right, seq)
			assert.Positive(t, sc.Score(p.Left-1, p.Right-1), "%s: %v can't pair", seq, p)
			assert.False(t, used[p.Left], "%s: %d paired twice", seq, p.Left)
			assert.False(t, used[p.Right], "%s: %d paired twice", seq, p.Right)
			used[p.Left], used[p.Right] = true, true
		}

		assert.Equal(t, len(seq), len(res.Notation), seq)
		assert.Equal(t, 2*len(res.Pairs), len(seq)-strings.Count(res.Notation, "."), seq)
	}
}

func TestFold_deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for n := 0; n < 10; n++ {
		seq := randomSeq(r, 10+r.Intn(25))

		first, err := Fold(context.Background(), seq, testConfig(1))
		require.NoError(t, err)

		second, err := Fold(context.Background(), seq, testConfig(8))
		require.NoError(t, err)

		assert.Equal(t, first, second, seq)
	}
}

func TestFold_shortSequences(t *testing.T) {
	tests := []struct {
		name string
		seq  string
	}{
		{"empty", ""},
		{"one", "G"},
		{"two", "GC"},
		{"three", "GCA"},
		{"three, unpairable", "AAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Fold(context.Background(), tt.seq, testConfig(2))
			require.NoError(t, err)

			assert.Zero(t, res.Pseudoknot)
			assert.Equal(t, res.Hairpin, res.Score)
			assert.Len(t, res.Notation, len(tt.seq))
			assert.NotNil(t, res.Pairs)
		})
	}
}

func TestFold_empty(t *testing.T) {
	res, err := Fold(context.Background(), "", testConfig(1))
	require.NoError(t, err)

	assert.Zero(t, res.Score)
	assert.Empty(t, res.Pairs)
	assert.Equal(t, "", res.Notation)
}

func TestFold_noPairs(t *testing.T) {
	seq := strings.Repeat("A", 30)

	res, err := Fold(context.Background(), seq, wobbleConfig(1))
	require.NoError(t, err)

	assert.Zero(t, res.Score)
	assert.Empty(t, res.Pairs)
	assert.Equal(t, strings.Repeat(".", 30), res.Notation)
}

func TestFold_wobble(t *testing.T) {
	seq := "GGGGUUUU"

	without, err := Fold(context.Background(), seq, testConfig(2))
	require.NoError(t, err)
	assert.Zero(t, without.Score)

	with, err := Fold(context.Background(), seq, wobbleConfig(2))
	require.NoError(t, err)
	assert.Greater(t, with.Score, without.Score)
	assert.Equal(t, 2*len(with.Pairs), with.Score)
	assert.Equal(t, []Pair{{1, 8}, {2, 7}, {3, 6}, {4, 5}}, with.Pairs)
	assert.Equal(t, "(((())))", with.Notation)
}

func TestFold_tooLong(t *testing.T) {
	seq := strings.Repeat("ACGU", 26)[:MaxSeqLength+1]

	res, err := Fold(context.Background(), seq, testConfig(1))
	require.ErrorIs(t, err, ErrSeqTooLong)
	assert.Nil(t, res)
}

func TestFold_maxLength(t *testing.T) {
	if testing.Short() {
		t.Skip("folding a max length sequence is slow")
	}

	seq := randomSeq(rand.New(rand.NewSource(100)), MaxSeqLength)

	res, err := Fold(context.Background(), seq, testConfig(4))
	require.NoError(t, err)
	assert.Len(t, res.Pairs, res.Score)
}

func TestFold_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fold(ctx, hairpinExample, testConfig(2))
	require.ErrorIs(t, err, context.Canceled)
}
