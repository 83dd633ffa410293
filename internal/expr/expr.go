// Package expr defines the boolean expression tree and its parser.
package expr

// Expr is a node in a boolean expression tree. Trees are immutable once
// built: no node is shared and no node is modified after construction.
type Expr interface {
	isExpr()
	String() string
}

type Ident struct{ Name string }

func (Ident) isExpr() {}

type Not struct{ X Expr }

func (Not) isExpr() {}

type And struct{ L, R Expr }

func (And) isExpr() {}

type Or struct{ L, R Expr }

func (Or) isExpr() {}

type Xor struct{ L, R Expr }

func (Xor) isExpr() {}

type Implies struct{ L, R Expr }

func (Implies) isExpr() {}

func (e Ident) String() string { return e.Name }

func (e Not) String() string { return "¬" + e.X.String() }

func (e And) String() string { return "(" + e.L.String() + " ∧ " + e.R.String() + ")" }

func (e Or) String() string { return "(" + e.L.String() + " ∨ " + e.R.String() + ")" }

func (e Xor) String() string { return "(" + e.L.String() + " ⊕ " + e.R.String() + ")" }

func (e Implies) String() string { return "(" + e.L.String() + " → " + e.R.String() + ")" }
