package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/rfaulhaber/ttt/internal/eval"
)

var (
	matchStyle    = color.New(color.FgGreen, color.Bold)
	mismatchStyle = color.New(color.FgRed, color.Bold)
)

// tableFormatter is the default human-readable renderer.
type tableFormatter struct {
	opts Options
}

func (f tableFormatter) TruthTable(t *eval.TruthTable) string {
	var b strings.Builder
	for _, v := range t.Variables {
		fmt.Fprintf(&b, "%4s", v)
	}
	fmt.Fprintf(&b, "%8s\n", "Result")
	b.WriteString(strings.Repeat("----", len(t.Variables)))
	b.WriteString("--------\n")
	for _, row := range t.Rows {
		for _, v := range t.Variables {
			fmt.Fprintf(&b, "%4s", tf(row.Assignment[v]))
		}
		fmt.Fprintf(&b, "%8s\n", tf(row.Result))
	}
	return b.String()
}

func (f tableFormatter) Equivalence(c *eval.EquivalenceCheck, left, right string) string {
	var b strings.Builder
	if c.Equivalent {
		b.WriteString(matchStyle.Sprint("✓ Expressions are equivalent"))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  Left:  %s\n", left)
		fmt.Fprintf(&b, "  Right: %s\n", right)
		return b.String()
	}

	b.WriteString(mismatchStyle.Sprint("✗ Expressions are not equivalent"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  Left:  %s\n", left)
	fmt.Fprintf(&b, "  Right: %s\n", right)
	b.WriteString("\nDifferences:\n")

	shown := c.Differences
	if len(shown) > f.opts.MaxDifferences {
		shown = shown[:f.opts.MaxDifferences]
	}
	for _, diff := range shown {
		b.WriteString("  ")
		for _, v := range c.Variables {
			fmt.Fprintf(&b, "%s=%s ", v, tf(diff.Assignment[v]))
		}
		fmt.Fprintf(&b, "→ Left=%s, Right=%s\n", tf(diff.Left), tf(diff.Right))
	}
	if rest := len(c.Differences) - f.opts.MaxDifferences; rest > 0 {
		fmt.Fprintf(&b, "  ... and %d more differences\n", rest)
	}
	return b.String()
}

func (f tableFormatter) Reduction(r *eval.Reduction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Expression: %s\n", r.Original)
	if r.Simplified {
		fmt.Fprintf(&b, "Reduced form: %s\n", r.Reduced)
	} else {
		fmt.Fprintf(&b, "Reduced form: %s (already minimal)\n", r.Reduced)
	}
	return b.String()
}
