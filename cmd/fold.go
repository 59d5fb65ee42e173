package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/jjtimmons/knotfold/internal/fold"
	"github.com/jjtimmons/knotfold/internal/report"
	"github.com/jjtimmons/knotfold/internal/seqio"
)

// foldCmd is for finding the highest scoring structure of a single RNA sequence
var foldCmd = &cobra.Command{
	Use:                        "fold [sequence]",
	Short:                      "Find the highest scoring structure of an RNA sequence",
	RunE:                       runFold,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Find the highest scoring secondary structure of an RNA sequence.

Each base pair adds its score: A-U and C-G pairs score --watson-crick-score,
G-U pairs score --wobble-score when --wobble is set. The structure is made of
hairpins (one stem) and pseudoknots (two crossing stems) side by side, it is
not a free energy model.

The sequence is either the first argument or the first record of a FASTA file
(--in), up to 100 bases. In the bracket notation '(' and ')' are pairs that
don't cross an earlier pair, '{' and '}' those that do.`,
	Example: `  knotfold fold ACGUGCCACGAUUCAACGUGGCACAG
  knotfold fold --in target.fa --wobble --wobble-score 2 --format json`,
	Aliases: []string{"mfe"},
}

// set flags
func init() {
	foldCmd.Flags().StringP("in", "i", "", "input FASTA with the RNA sequence")
	foldCmd.Flags().StringP("out", "o", "", "output file name (default stdout)")
	foldCmd.Flags().StringP("format", "f", string(report.Text), "output format: text, json or yaml")
	foldCmd.Flags().BoolP("wobble", "w", false, "allow G-U wobble pairs")
	foldCmd.Flags().Int("watson-crick-score", 1, "score of an A-U or C-G pair")
	foldCmd.Flags().Int("wobble-score", 1, "score of a G-U pair")
	foldCmd.Flags().IntP("threads", "t", runtime.NumCPU(), "goroutines filling the tables")

	RootCmd.AddCommand(foldCmd)
}

// runFold reads the sequence, folds it, and writes the report.
func runFold(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	target, seq, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := fold.Fold(cmd.Context(), seq, conf)
	if err != nil {
		if errors.Is(err, fold.ErrSeqTooLong) {
			return fmt.Errorf("cannot fold %s: %w", describe(target), err)
		}
		return err
	}
	elapsed := time.Since(start)

	if conf.Verbose {
		stderr.Printf("folded %d bp in %s: %d alignment cells, %s\n", len(seq), elapsed, res.Cells, res.Decision.Kind)
	}

	out, _ := cmd.Flags().GetString("out")
	return write(cmd, out, report.New(target, res, conf.Pairing, elapsed), format)
}

// parseInput returns the name and sequence of the target, from either the
// first argument or the first record of the --in FASTA.
func parseInput(cmd *cobra.Command, args []string) (target, seq string, err error) {
	in, _ := cmd.Flags().GetString("in")

	switch {
	case in != "" && len(args) > 0:
		return "", "", errors.New("pass either a sequence or an --in file, not both")
	case in != "":
		records, err := seqio.Read(in)
		if err != nil {
			return "", "", err
		}

		if len(records) > 1 {
			stderr.Printf(
				"warning: %d sequences were in %s. Only folding the first: %s\n",
				len(records),
				in,
				records[0].ID,
			)
		}
		return records[0].ID, records[0].Seq, nil
	case len(args) > 0:
		return "", seqio.Normalize(args[0]), nil
	default:
		return "", "", errors.New("no sequence passed")
	}
}

// write the output to the file at path, or to the command's stdout when path is empty.
func write(cmd *cobra.Command, path string, out *report.Output, format report.Format) error {
	if path == "" {
		return report.Write(cmd.OutOrStdout(), out, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}

	if err := report.Write(f, out, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write the output: %w", err)
	}
	return f.Close()
}

// describe names the target in errors
func describe(target string) string {
	if target == "" {
		return "sequence"
	}
	return target
}
