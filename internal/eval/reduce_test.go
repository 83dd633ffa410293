package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaulhaber/ttt/internal/expr"
)

func TestReduceAbsorption(t *testing.T) {
	r, err := Reduce(mustParse(t, "a or (a and b)"), DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, expr.Ident{Name: "a"}, r.Reduced)
	assert.True(t, r.Simplified)
}

func TestReduceConsensus(t *testing.T) {
	r, err := Reduce(mustParse(t, "(a and b) or (not a and b)"), DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, expr.Ident{Name: "b"}, r.Reduced)
	assert.True(t, r.Simplified)
}

func TestReduceTautology(t *testing.T) {
	r, err := Reduce(mustParse(t, "a or not a"), DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, TautologyTree(), r.Reduced)
	assert.True(t, r.Simplified)
	assert.Equal(t, "(true ∨ ¬true)", r.Reduced.String())
}

func TestReduceContradiction(t *testing.T) {
	r, err := Reduce(mustParse(t, "a and not a"), DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, ContradictionTree(), r.Reduced)
	assert.True(t, r.Simplified)
	assert.Equal(t, "(false ∧ ¬false)", r.Reduced.String())
}

func TestReduceImplicationTautology(t *testing.T) {
	r, err := Reduce(mustParse(t, "a -> a"), DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, TautologyTree(), r.Reduced)
}

func TestReduceAlreadyMinimal(t *testing.T) {
	r, err := Reduce(mustParse(t, "a and b"), DefaultLimits)
	require.NoError(t, err)
	assert.False(t, r.Simplified)
	assert.Equal(t, expr.And{L: expr.Ident{Name: "a"}, R: expr.Ident{Name: "b"}}, r.Reduced)
}

func TestReduceOperandOrderIsNotSimplification(t *testing.T) {
	// Reconstruction emits variables in sort order; the structural
	// comparison must not count the operand swap as a simplification.
	r, err := Reduce(mustParse(t, "b or a"), DefaultLimits)
	require.NoError(t, err)
	assert.False(t, r.Simplified)
}

func TestReducePreservesOriginal(t *testing.T) {
	e := mustParse(t, "a or (a and b)")
	r, err := Reduce(e, DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, e, r.Original)
}

func TestReduceSemanticPreservation(t *testing.T) {
	cases := []string{
		"a",
		"not a",
		"a and b",
		"a or (a and b)",
		"(a and b) or (not a and b)",
		"a xor b",
		"a or not a",
		"a and not a",
		"(a -> b) and (b -> c) and (c -> a)",
		"(a xor b) or (c and not d)",
	}
	for _, src := range cases {
		e := mustParse(t, src)
		r, err := Reduce(e, DefaultLimits)
		require.NoError(t, err, src)
		check, err := CheckEquivalence(e, r.Reduced, DefaultLimits)
		require.NoError(t, err, src)
		assert.True(t, check.Equivalent, "reduce changed the function of %s: %v", src, check.Differences)
	}
}

func TestReducePropagatesValidation(t *testing.T) {
	_, err := Reduce(orChain(21), DefaultLimits)
	var cerr *TooManyVariablesError
	assert.ErrorAs(t, err, &cerr)

	_, err = Reduce(expr.Ident{Name: "a-b"}, DefaultLimits)
	var verr *InvalidVariableNameError
	assert.ErrorAs(t, err, &verr)
}

func TestSameStructure(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"a", "a", true},
		{"a", "b", false},
		{"not a", "not a", true},
		{"a and b", "a and b", true},
		{"a and b", "b and a", true},
		{"a or b", "b or a", true},
		{"a xor b", "b xor a", true},
		{"a and b", "a or b", false},
		{"a and b", "a and c", false},
		{"(a or b) and c", "c and (b or a)", true},
		{"not (a and b)", "not (b and a)", true},
	}
	for _, tc := range cases {
		got := sameStructure(mustParse(t, tc.a), mustParse(t, tc.b))
		assert.Equal(t, tc.want, got, "%s vs %s", tc.a, tc.b)
	}
}
