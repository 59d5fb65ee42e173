// Package report writes fold results as text, JSON or YAML
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jjtimmons/knotfold/config"
	"github.com/jjtimmons/knotfold/internal/fold"
)

// Format is an output format
type Format string

const (
	// Text is the human-readable report
	Text Format = "text"

	// JSON is an indented JSON object
	JSON Format = "json"

	// YAML is a YAML document
	YAML Format = "yaml"
)

// Formats are the recognized output formats
var Formats = []Format{Text, JSON, YAML}

// ParseFormat returns the Format with the passed name (case-insensitive)
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unrecognized output format %q, expected one of %v", name, Formats)
}

// Output is a struct containing the fold of a single sequence.
type Output struct {
	// Target's name. In >example_RNA FASTA its "example_RNA"
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Seq is the folded sequence
	Seq string `json:"seq" yaml:"seq"`

	// Length of the sequence
	Length int `json:"length" yaml:"length"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time" yaml:"time"`

	// Execution is the number of seconds it took to fold the sequence
	Execution float64 `json:"execution" yaml:"execution"`

	// Pairing rules used
	Pairing config.PairingConfig `json:"pairing" yaml:"pairing"`

	// Score is the maximum matching score
	Score int `json:"score" yaml:"score"`

	// Structure is how the whole sequence was folded: hairpin, pseudoknot or split
	Structure string `json:"structure" yaml:"structure"`

	// Notation is the dot-bracket string, braces mark crossing pairs
	Notation string `json:"notation" yaml:"notation"`

	// Pairs are the 1-indexed base pairs, by left position
	Pairs []fold.Pair `json:"pairs" yaml:"pairs"`
}

// New creates an Output from a fold result
func New(target string, res *fold.Result, pairing config.PairingConfig, elapsed time.Duration) *Output {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()

	return &Output{
		Target:    target,
		Seq:       res.Seq,
		Length:    len(res.Seq),
		Time:      t.Format("2006/01/02 15:04:05"),
		Execution: elapsed.Seconds(),
		Pairing:   pairing,
		Score:     res.Score,
		Structure: res.Decision.Kind.String(),
		Notation:  res.Notation,
		Pairs:     res.Pairs,
	}
}

// Write serializes the output to w in the format requested.
func Write(w io.Writer, out *Output, format Format) error {
	switch format {
	case Text:
		_, err := io.WriteString(w, text(out))
		return err
	case JSON:
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unrecognized output format %q", format)
	}
}

// text renders the input, the pairing rules, and the structure, in that order
func text(out *Output) string {
	var sb strings.Builder

	sb.WriteString("[ Input sequence ]\n")
	if out.Target != "" {
		fmt.Fprintf(&sb, "Name: %s\n", out.Target)
	}
	fmt.Fprintf(&sb, "RNA sequence: %s\n", out.Seq)
	fmt.Fprintf(&sb, "Length of sequence: %d\n\n", out.Length)

	sb.WriteString("[ Arguments ]\n")
	fmt.Fprintf(&sb, "Wobble pairs allowed: %t\n", out.Pairing.Wobble)
	fmt.Fprintf(&sb, "Watson-Crick pair score: %d\n", out.Pairing.WatsonCrickScore)
	if out.Pairing.Wobble {
		fmt.Fprintf(&sb, "Wobble pair score: %d\n", out.Pairing.WobbleScore)
	}
	sb.WriteString("\n")

	sb.WriteString("[ Result ]\n")
	fmt.Fprintf(&sb, "Maximum matching score: %d\n", out.Score)
	fmt.Fprintf(&sb, "%s\n%s\n\n", out.Seq, out.Notation)

	for _, p := range out.Pairs {
		fmt.Fprintf(&sb, "%s\n", p)
	}

	return sb.String()
}
