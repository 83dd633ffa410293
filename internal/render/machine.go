package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rfaulhaber/ttt/internal/eval"
)

// jsonFormatter emits indented JSON.
type jsonFormatter struct{}

func (jsonFormatter) TruthTable(t *eval.TruthTable) string {
	return marshalJSON(t)
}

func (jsonFormatter) Equivalence(c *eval.EquivalenceCheck, left, right string) string {
	out := struct {
		Equivalent  bool              `json:"equivalent"`
		Left        string            `json:"left_expression"`
		Right       string            `json:"right_expression"`
		Differences []eval.Difference `json:"differences"`
	}{
		Equivalent:  c.Equivalent,
		Left:        left,
		Right:       right,
		Differences: c.Differences,
	}
	return marshalJSON(out)
}

func (jsonFormatter) Reduction(r *eval.Reduction) string {
	out := struct {
		Original   string `json:"original"`
		Reduced    string `json:"reduced"`
		Simplified bool   `json:"simplified"`
	}{
		Original:   r.Original.String(),
		Reduced:    r.Reduced.String(),
		Simplified: r.Simplified,
	}
	return marshalJSON(out)
}

func marshalJSON(v any) string {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("error serializing to JSON: %v", err)
	}
	return string(d) + "\n"
}

// csvFormatter emits comma-separated records.
type csvFormatter struct{}

func (csvFormatter) TruthTable(t *eval.TruthTable) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write(append(append([]string{}, t.Variables...), "result"))
	for _, row := range t.Rows {
		rec := make([]string, 0, len(t.Variables)+1)
		for _, v := range t.Variables {
			rec = append(rec, boolWord(row.Assignment[v]))
		}
		rec = append(rec, boolWord(row.Result))
		w.Write(rec)
	}
	w.Flush()
	return b.String()
}

func (csvFormatter) Equivalence(c *eval.EquivalenceCheck, left, right string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"equivalent", "left_expression", "right_expression"})
	w.Write([]string{boolWord(c.Equivalent), left, right})
	w.Flush()

	if len(c.Differences) > 0 {
		b.WriteString("\nDifferences:\n")
		dw := csv.NewWriter(&b)
		dw.Write(append(append([]string{}, c.Variables...), "left_value", "right_value"))
		for _, diff := range c.Differences {
			rec := make([]string, 0, len(c.Variables)+2)
			for _, v := range c.Variables {
				rec = append(rec, boolWord(diff.Assignment[v]))
			}
			rec = append(rec, boolWord(diff.Left), boolWord(diff.Right))
			dw.Write(rec)
		}
		dw.Flush()
	}
	return b.String()
}

func (csvFormatter) Reduction(r *eval.Reduction) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"original", "reduced", "simplified"})
	w.Write([]string{r.Original.String(), r.Reduced.String(), boolWord(r.Simplified)})
	w.Flush()
	return b.String()
}

// nuonFormatter emits nushell object notation.
type nuonFormatter struct{}

func (nuonFormatter) TruthTable(t *eval.TruthTable) string {
	var b strings.Builder
	b.WriteString("[\n")
	for i, row := range t.Rows {
		b.WriteString("  {")
		for j, v := range t.Variables {
			fmt.Fprintf(&b, "%s: %s", v, boolWord(row.Assignment[v]))
			if j < len(t.Variables)-1 {
				b.WriteString(", ")
			}
		}
		fmt.Fprintf(&b, ", result: %s}", boolWord(row.Result))
		if i < len(t.Rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	return b.String()
}

func (nuonFormatter) Equivalence(c *eval.EquivalenceCheck, left, right string) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  equivalent: %s,\n", boolWord(c.Equivalent))
	fmt.Fprintf(&b, "  left_expression: %q,\n", left)
	fmt.Fprintf(&b, "  right_expression: %q,\n", right)
	b.WriteString("  differences: [\n")
	for i, diff := range c.Differences {
		b.WriteString("    {")
		for j, v := range c.Variables {
			fmt.Fprintf(&b, "%s: %s", v, boolWord(diff.Assignment[v]))
			if j < len(c.Variables)-1 {
				b.WriteString(", ")
			}
		}
		fmt.Fprintf(&b, ", left_value: %s, right_value: %s}", boolWord(diff.Left), boolWord(diff.Right))
		if i < len(c.Differences)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  ]\n}\n")
	return b.String()
}

func (nuonFormatter) Reduction(r *eval.Reduction) string {
	return fmt.Sprintf("{\n  original: %q,\n  reduced: %q,\n  simplified: %s\n}\n",
		r.Original.String(), r.Reduced.String(), boolWord(r.Simplified))
}
