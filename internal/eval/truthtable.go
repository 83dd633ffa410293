package eval

import "github.com/rfaulhaber/ttt/internal/expr"

// Assignment maps variable names to truth values. Lookups on a missing
// name resolve to false; this default is part of the contract, not an
// error.
type Assignment map[string]bool

// Row pairs one enumerated assignment with the expression's value.
type Row struct {
	Assignment Assignment `json:"assignments"`
	Result     bool       `json:"result"`
}

// TruthTable holds one row per assignment over the sorted variable set,
// in canonical enumeration order.
type TruthTable struct {
	Variables []string `json:"variables"`
	Rows      []Row    `json:"rows"`
}

// assignmentFor builds the assignment for row index i: the variable at
// sorted position p takes bit p of i. This LSB-first mapping is the
// canonical enumeration order shared by truth tables, equivalence checks
// and the minimizer's ON-set.
func assignmentFor(vars []string, i int) Assignment {
	a := make(Assignment, len(vars))
	for p, name := range vars {
		a[name] = (i>>p)&1 == 1
	}
	return a
}

// Evaluate computes the expression's value under one assignment. Both
// operands of every binary node are evaluated.
func Evaluate(e expr.Expr, a Assignment) bool {
	switch v := e.(type) {
	case expr.Ident:
		return a[v.Name]
	case expr.Not:
		return !Evaluate(v.X, a)
	case expr.And:
		l, r := Evaluate(v.L, a), Evaluate(v.R, a)
		return l && r
	case expr.Or:
		l, r := Evaluate(v.L, a), Evaluate(v.R, a)
		return l || r
	case expr.Xor:
		l, r := Evaluate(v.L, a), Evaluate(v.R, a)
		return l != r
	case expr.Implies:
		l, r := Evaluate(v.L, a), Evaluate(v.R, a)
		return !l || r
	}
	return false
}

// BuildTruthTable enumerates every assignment over the expression's
// variables and evaluates each one. An expression with no variables
// yields a single row with an empty assignment.
func BuildTruthTable(e expr.Expr, lim Limits) (*TruthTable, error) {
	vars, err := Variables(e, lim)
	if err != nil {
		return nil, err
	}
	if len(vars) == 0 {
		return &TruthTable{
			Variables: vars,
			Rows:      []Row{{Assignment: Assignment{}, Result: Evaluate(e, nil)}},
		}, nil
	}
	rows := make([]Row, 0, 1<<len(vars))
	for i := 0; i < 1<<len(vars); i++ {
		a := assignmentFor(vars, i)
		rows = append(rows, Row{Assignment: a, Result: Evaluate(e, a)})
	}
	return &TruthTable{Variables: vars, Rows: rows}, nil
}
