package eval

import "github.com/rfaulhaber/ttt/internal/expr"

// Reduction holds an expression alongside its minimized form. Simplified
// is true when the reduced tree differs structurally from the original;
// the comparison treats binary operands as unordered and is not a
// logical-equivalence check.
type Reduction struct {
	Original   expr.Expr
	Reduced    expr.Expr
	Simplified bool
}

// TautologyTree is the fixed sentinel returned for always-true
// expressions. It reuses the identifier node kind on purpose: the output
// layer round-trips it as (true ∨ ¬true).
func TautologyTree() expr.Expr {
	return expr.Or{L: expr.Ident{Name: "true"}, R: expr.Not{X: expr.Ident{Name: "true"}}}
}

// ContradictionTree is the fixed sentinel for always-false expressions,
// rendered as (false ∧ ¬false).
func ContradictionTree() expr.Expr {
	return expr.And{L: expr.Ident{Name: "false"}, R: expr.Not{X: expr.Ident{Name: "false"}}}
}

// Reduce simplifies an expression. Tautologies and contradictions are
// detected by direct enumeration and short-circuit to their sentinel
// trees; everything else goes through Quine-McCluskey minimization.
func Reduce(e expr.Expr, lim Limits) (*Reduction, error) {
	vars, err := Variables(e, lim)
	if err != nil {
		return nil, err
	}

	if len(vars) > 0 {
		allTrue, allFalse := true, true
		for i := 0; i < 1<<len(vars); i++ {
			if Evaluate(e, assignmentFor(vars, i)) {
				allFalse = false
			} else {
				allTrue = false
			}
			if !allTrue && !allFalse {
				break
			}
		}
		if allTrue {
			return &Reduction{Original: e, Reduced: TautologyTree(), Simplified: true}, nil
		}
		if allFalse {
			return &Reduction{Original: e, Reduced: ContradictionTree(), Simplified: true}, nil
		}
	}

	reduced, ok := minimize(e, vars)
	if !ok {
		return &Reduction{Original: e, Reduced: e, Simplified: false}, nil
	}
	return &Reduction{
		Original:   e,
		Reduced:    reduced,
		Simplified: !sameStructure(e, reduced),
	}, nil
}

// sameStructure compares two trees node by node, treating the operands of
// every binary operator as interchangeable. It deliberately says nothing
// about logical equivalence.
func sameStructure(a, b expr.Expr) bool {
	switch av := a.(type) {
	case expr.Ident:
		bv, ok := b.(expr.Ident)
		return ok && av.Name == bv.Name
	case expr.Not:
		bv, ok := b.(expr.Not)
		return ok && sameStructure(av.X, bv.X)
	case expr.And:
		bv, ok := b.(expr.And)
		return ok && commuted(av.L, av.R, bv.L, bv.R)
	case expr.Or:
		bv, ok := b.(expr.Or)
		return ok && commuted(av.L, av.R, bv.L, bv.R)
	case expr.Xor:
		bv, ok := b.(expr.Xor)
		return ok && commuted(av.L, av.R, bv.L, bv.R)
	case expr.Implies:
		bv, ok := b.(expr.Implies)
		return ok && commuted(av.L, av.R, bv.L, bv.R)
	}
	return false
}

func commuted(al, ar, bl, br expr.Expr) bool {
	if sameStructure(al, bl) && sameStructure(ar, br) {
		return true
	}
	return sameStructure(al, br) && sameStructure(ar, bl)
}
