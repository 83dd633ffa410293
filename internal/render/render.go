// Package render formats engine results for the CLI: a human-readable
// table plus JSON, CSV and Nuon machine formats.
package render

import (
	"fmt"

	"github.com/rfaulhaber/ttt/internal/eval"
)

// Format selects an output renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatNuon  Format = "nuon"
)

// ParseFormat resolves a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatCSV, FormatNuon:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json, csv or nuon)", s)
}

// Options tunes renderer output.
type Options struct {
	// MaxDifferences caps the number of mismatching assignments the
	// table renderer prints for an equivalence check.
	MaxDifferences int
}

// DefaultOptions matches the published CLI defaults.
var DefaultOptions = Options{MaxDifferences: 10}

// Formatter renders each engine result type to a string.
type Formatter interface {
	TruthTable(t *eval.TruthTable) string
	Equivalence(c *eval.EquivalenceCheck, left, right string) string
	Reduction(r *eval.Reduction) string
}

// New returns the formatter for a format.
func New(f Format, opts Options) Formatter {
	switch f {
	case FormatJSON:
		return jsonFormatter{}
	case FormatCSV:
		return csvFormatter{}
	case FormatNuon:
		return nuonFormatter{}
	default:
		return tableFormatter{opts: opts}
	}
}

func tf(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

func boolWord(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
