// Package eval evaluates and minimizes boolean expression trees: truth
// tables, equivalence checks, and Quine-McCluskey reduction. Every
// operation is a pure function of its inputs; the only failure modes are
// the two validation errors raised while collecting variables.
package eval

import (
	"sort"
	"unicode"

	"github.com/rfaulhaber/ttt/internal/expr"
)

// Limits bounds the work a single call may admit. The variable cap keeps
// enumeration at 2^MaxVariables rows or fewer.
type Limits struct {
	MaxVariables  int
	MaxNameLength int
}

// DefaultLimits matches the published CLI limits.
var DefaultLimits = Limits{MaxVariables: 20, MaxNameLength: 50}

// Variables collects the distinct variable names of an expression in
// sorted order. Sort position doubles as the bit position used by
// assignment enumeration. Traversal is pre-order and fails on the first
// invalid name, or as soon as the distinct count exceeds the cap; later
// parts of the tree are never visited.
func Variables(e expr.Expr, lim Limits) ([]string, error) {
	seen := make(map[string]bool)
	if err := collect(e, lim, seen); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func collect(e expr.Expr, lim Limits, seen map[string]bool) error {
	switch v := e.(type) {
	case expr.Ident:
		if !validName(v.Name, lim.MaxNameLength) {
			return &InvalidVariableNameError{Name: v.Name, MaxLength: lim.MaxNameLength}
		}
		if !seen[v.Name] {
			seen[v.Name] = true
			if len(seen) > lim.MaxVariables {
				return &TooManyVariablesError{Count: len(seen), Max: lim.MaxVariables}
			}
		}
		return nil
	case expr.Not:
		return collect(v.X, lim, seen)
	case expr.And:
		if err := collect(v.L, lim, seen); err != nil {
			return err
		}
		return collect(v.R, lim, seen)
	case expr.Or:
		if err := collect(v.L, lim, seen); err != nil {
			return err
		}
		return collect(v.R, lim, seen)
	case expr.Xor:
		if err := collect(v.L, lim, seen); err != nil {
			return err
		}
		return collect(v.R, lim, seen)
	case expr.Implies:
		if err := collect(v.L, lim, seen); err != nil {
			return err
		}
		return collect(v.R, lim, seen)
	}
	return nil
}

func validName(name string, maxLen int) bool {
	if name == "" || len(name) > maxLen {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// unionSorted merges two sorted, duplicate-free name lists.
func unionSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
