package eval

import "github.com/rfaulhaber/ttt/internal/expr"

// Difference records one assignment where two expressions disagree.
type Difference struct {
	Assignment Assignment `json:"assignment"`
	Left       bool       `json:"left_value"`
	Right      bool       `json:"right_value"`
}

// EquivalenceCheck is the result of comparing two expressions over the
// union of their variables. Equivalent holds exactly when Differences is
// empty.
type EquivalenceCheck struct {
	Equivalent  bool         `json:"equivalent"`
	Variables   []string     `json:"variables"`
	Differences []Difference `json:"differences"`
}

// CheckEquivalence validates both trees, then enumerates every assignment
// over the union of their variable sets and records each mismatch. A
// variable unknown to one side evaluates to false there and never changes
// that side's value, so padding the universe is sound. The union is held
// to the same variable cap as a single expression.
func CheckEquivalence(left, right expr.Expr, lim Limits) (*EquivalenceCheck, error) {
	lv, err := Variables(left, lim)
	if err != nil {
		return nil, err
	}
	rv, err := Variables(right, lim)
	if err != nil {
		return nil, err
	}
	vars := unionSorted(lv, rv)
	if len(vars) > lim.MaxVariables {
		return nil, &TooManyVariablesError{Count: len(vars), Max: lim.MaxVariables}
	}

	if len(vars) == 0 {
		l, r := Evaluate(left, nil), Evaluate(right, nil)
		check := &EquivalenceCheck{Equivalent: l == r, Variables: vars}
		if l != r {
			check.Differences = []Difference{{Assignment: Assignment{}, Left: l, Right: r}}
		}
		return check, nil
	}

	var diffs []Difference
	for i := 0; i < 1<<len(vars); i++ {
		a := assignmentFor(vars, i)
		l, r := Evaluate(left, a), Evaluate(right, a)
		if l != r {
			diffs = append(diffs, Difference{Assignment: a, Left: l, Right: r})
		}
	}
	return &EquivalenceCheck{
		Equivalent:  len(diffs) == 0,
		Variables:   vars,
		Differences: diffs,
	}, nil
}
