// Package seqio reads RNA sequences from the command line or FASTA files
package seqio

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Record is a single named sequence
type Record struct {
	// ID is the header of the record, ex: "example_RNA" in ">example_RNA"
	ID string

	// Seq is the normalized sequence
	Seq string
}

// whitespace is removed from sequences, everything else is kept and scored by the folder
var whitespace = regexp.MustCompile(`\s+`)

// Normalize removes whitespace and upper-cases a sequence.
func Normalize(seq string) string {
	return strings.ToUpper(whitespace.ReplaceAllString(seq, ""))
}

// Read a FASTA file (by its path on local FS) to a slice of Records.
func Read(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %w", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return ParseFASTA(path, string(dat))
}

// ParseFASTA parses the multi-FASTA contents to records. name is only used in errors.
func ParseFASTA(name, contents string) (records []Record, err error) {
	lines := strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n")

	// read in the headers
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}

	// accumulate the sequences from between the headers
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}

		seqLines := lines[headerIndex+1 : nextLine]
		records = append(records, Record{
			ID:  ids[i],
			Seq: Normalize(strings.Join(seqLines, "")),
		})
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s", name)
	}

	return records, nil
}
