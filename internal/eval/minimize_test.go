package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaulhaber/ttt/internal/expr"
)

func TestCombine(t *testing.T) {
	a := implicant{value: 0b01, mask: 0b11, covers: []int{1}}
	b := implicant{value: 0b11, mask: 0b11, covers: []int{3}}
	m, ok := combine(a, b)
	require.True(t, ok)
	assert.Equal(t, uint64(0b01), m.value)
	assert.Equal(t, uint64(0b01), m.mask)
	assert.Equal(t, []int{1, 3}, m.covers)

	// Different masks never combine.
	_, ok = combine(implicant{value: 0, mask: 0b01}, implicant{value: 0, mask: 0b11})
	assert.False(t, ok)

	// More than one differing bit never combines.
	_, ok = combine(
		implicant{value: 0b00, mask: 0b11, covers: []int{0}},
		implicant{value: 0b11, mask: 0b11, covers: []int{3}},
	)
	assert.False(t, ok)

	// Identical implicants never combine.
	_, ok = combine(a, a)
	assert.False(t, ok)
}

func TestPrimeImplicantsFullMerge(t *testing.T) {
	// All four minterms over two variables collapse to the empty cube.
	seeds := []implicant{
		{value: 0b00, mask: 0b11, covers: []int{0}},
		{value: 0b01, mask: 0b11, covers: []int{1}},
		{value: 0b10, mask: 0b11, covers: []int{2}},
		{value: 0b11, mask: 0b11, covers: []int{3}},
	}
	primes := primeImplicants(seeds)
	require.Len(t, primes, 1)
	assert.Equal(t, uint64(0), primes[0].mask)
	assert.Equal(t, []int{0, 1, 2, 3}, primes[0].covers)
}

func TestPrimeImplicantsNoMerge(t *testing.T) {
	// Minterms 1 and 2 differ in two bits: both stay prime.
	seeds := []implicant{
		{value: 0b01, mask: 0b11, covers: []int{1}},
		{value: 0b10, mask: 0b11, covers: []int{2}},
	}
	primes := primeImplicants(seeds)
	assert.Len(t, primes, 2)
}

func TestMinimalCoverEssential(t *testing.T) {
	// Two primes, each the sole cover of one minterm: both essential.
	primes := []implicant{
		{value: 0b01, mask: 0b01, covers: []int{1, 3}},
		{value: 0b10, mask: 0b10, covers: []int{2, 3}},
	}
	selected := minimalCover(primes, []int{1, 2, 3})
	assert.Len(t, selected, 2)
}

func TestMinimalCoverGreedyFallback(t *testing.T) {
	// No minterm has a sole cover; greedy picks the widest candidate.
	primes := []implicant{
		{value: 0, mask: 0, covers: []int{0, 1}},
		{value: 0, mask: 0, covers: []int{1, 2}},
		{value: 0, mask: 0, covers: []int{0, 1, 2}},
	}
	selected := minimalCover(primes, []int{0, 1, 2})
	require.Len(t, selected, 1)
	assert.Equal(t, []int{0, 1, 2}, selected[0].covers)
}

func TestMinimizeAbsorption(t *testing.T) {
	e := mustParse(t, "a or (a and b)")
	vars, err := Variables(e, DefaultLimits)
	require.NoError(t, err)
	reduced, ok := minimize(e, vars)
	require.True(t, ok)
	assert.Equal(t, expr.Ident{Name: "a"}, reduced)
}

func TestMinimizeConsensus(t *testing.T) {
	e := mustParse(t, "(a and b) or (not a and b)")
	vars, err := Variables(e, DefaultLimits)
	require.NoError(t, err)
	reduced, ok := minimize(e, vars)
	require.True(t, ok)
	assert.Equal(t, expr.Ident{Name: "b"}, reduced)
}

func TestMinimizeAlreadyMinimal(t *testing.T) {
	e := mustParse(t, "a and b")
	vars, err := Variables(e, DefaultLimits)
	require.NoError(t, err)
	reduced, ok := minimize(e, vars)
	require.True(t, ok)
	assert.Equal(t, expr.And{L: expr.Ident{Name: "a"}, R: expr.Ident{Name: "b"}}, reduced)
}

func TestMinimizeXorStaysSumOfProducts(t *testing.T) {
	e := mustParse(t, "a xor b")
	vars, err := Variables(e, DefaultLimits)
	require.NoError(t, err)
	reduced, ok := minimize(e, vars)
	require.True(t, ok)
	// (a ∧ ¬b) ∨ (¬a ∧ b), terms in selection order.
	assert.Equal(t, expr.Or{
		L: expr.And{L: expr.Ident{Name: "a"}, R: expr.Not{X: expr.Ident{Name: "b"}}},
		R: expr.And{L: expr.Not{X: expr.Ident{Name: "a"}}, R: expr.Ident{Name: "b"}},
	}, reduced)
}

func TestMinimizeEmptyOnSet(t *testing.T) {
	e := mustParse(t, "a and not a")
	vars, err := Variables(e, DefaultLimits)
	require.NoError(t, err)
	reduced, ok := minimize(e, vars)
	require.True(t, ok)
	assert.Equal(t, ContradictionTree(), reduced)
}

func TestMinimizePreservesSemantics(t *testing.T) {
	cases := []string{
		"a or (a and b)",
		"(a and b) or (not a and b)",
		"a xor b",
		"(a -> b) and (b -> c)",
		"(a and b and c) or (a and b and not c) or (not a and c)",
	}
	for _, src := range cases {
		e := mustParse(t, src)
		vars, err := Variables(e, DefaultLimits)
		require.NoError(t, err)
		reduced, ok := minimize(e, vars)
		require.True(t, ok, src)
		check, err := CheckEquivalence(e, reduced, DefaultLimits)
		require.NoError(t, err, src)
		assert.True(t, check.Equivalent, "minimize changed the function of %s: %v", src, check.Differences)
	}
}
