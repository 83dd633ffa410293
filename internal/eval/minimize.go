package eval

import (
	"math/bits"
	"sort"

	"github.com/rfaulhaber/ttt/internal/expr"
)

// implicant is a product term over the sorted variable universe. value
// holds the truth value for care positions; mask has 1=care, 0=don't-care.
// covers lists the ON-set minterm indices the implicant covers, sorted
// ascending.
type implicant struct {
	value  uint64
	mask   uint64
	covers []int
}

type implicantKey struct{ value, mask uint64 }

// onSet returns the indices of the assignments under which the expression
// evaluates true, using the canonical enumeration order.
func onSet(e expr.Expr, vars []string) []int {
	var on []int
	for i := 0; i < 1<<len(vars); i++ {
		if Evaluate(e, assignmentFor(vars, i)) {
			on = append(on, i)
		}
	}
	return on
}

// minimize runs Quine-McCluskey over the expression's ON-set and returns
// the reconstructed sum of products. The second return is false when no
// result could be produced: the expression has no variables, or every
// selected implicant degenerated to an empty conjunction. Callers keep
// the original tree in that case.
func minimize(e expr.Expr, vars []string) (expr.Expr, bool) {
	n := len(vars)
	if n == 0 {
		return nil, false
	}
	on := onSet(e, vars)
	if len(on) == 0 {
		// Always false.
		return ContradictionTree(), true
	}

	fullMask := uint64(1)<<n - 1
	seeds := make([]implicant, len(on))
	for i, m := range on {
		seeds[i] = implicant{value: uint64(m), mask: fullMask, covers: []int{m}}
	}

	primes := primeImplicants(seeds)
	selected := minimalCover(primes, on)
	return reconstruct(selected, vars)
}

// primeImplicants iteratively combines adjacent implicants until no pair
// combines, collecting every implicant that never took part in a
// combination. Implicants are grouped by the count of positive literals;
// only groups k and k+1 can hold a combinable pair.
func primeImplicants(current []implicant) []implicant {
	var primes []implicant
	for len(current) > 0 {
		groups := make(map[int][]int)
		for i, imp := range current {
			ones := bits.OnesCount64(imp.value & imp.mask)
			groups[ones] = append(groups[ones], i)
		}
		counts := make([]int, 0, len(groups))
		for k := range groups {
			counts = append(counts, k)
		}
		sort.Ints(counts)

		used := make([]bool, len(current))
		var next []implicant
		seen := make(map[implicantKey]bool)
		for _, k := range counts {
			for _, i := range groups[k] {
				for _, j := range groups[k+1] {
					m, ok := combine(current[i], current[j])
					if !ok {
						continue
					}
					used[i], used[j] = true, true
					key := implicantKey{m.value, m.mask}
					if !seen[key] {
						seen[key] = true
						next = append(next, m)
					}
				}
			}
		}
		for i, u := range used {
			if !u {
				primes = append(primes, current[i])
			}
		}
		current = next
	}
	return primes
}

// combine merges two implicants with identical care sets that differ in
// exactly one care position. The differing position becomes don't-care
// and the covered sets are unioned.
func combine(a, b implicant) (implicant, bool) {
	if a.mask != b.mask {
		return implicant{}, false
	}
	diff := (a.value ^ b.value) & a.mask
	if diff == 0 || diff&(diff-1) != 0 {
		return implicant{}, false
	}
	return implicant{
		value:  a.value &^ diff,
		mask:   a.mask &^ diff,
		covers: unionInts(a.covers, b.covers),
	}, true
}

// minimalCover selects implicants covering every ON-set minterm: first
// essential prime implicants, each the sole cover of some minterm, then
// a greedy pass picking whichever candidate covers the most still
// uncovered minterms. The greedy phase is a heuristic; the result is
// simplified, not provably smallest.
func minimalCover(primes []implicant, on []int) []implicant {
	if len(primes) == 0 {
		return nil
	}
	coverSets := make([]map[int]bool, len(primes))
	for i, p := range primes {
		set := make(map[int]bool, len(p.covers))
		for _, m := range p.covers {
			set[m] = true
		}
		coverSets[i] = set
	}

	var selected []implicant
	covered := make(map[int]bool, len(on))
	take := func(i int) {
		selected = append(selected, primes[i])
		for m := range coverSets[i] {
			covered[m] = true
		}
		coverSets[i] = nil
	}

	for changed := true; changed; {
		changed = false
		for _, m := range on {
			if covered[m] {
				continue
			}
			sole := -1
			for i, set := range coverSets {
				if set == nil || !set[m] {
					continue
				}
				if sole >= 0 {
					sole = -1
					break
				}
				sole = i
			}
			if sole >= 0 {
				take(sole)
				changed = true
			}
		}
	}

	for len(covered) < len(on) {
		best, bestCount := -1, 0
		for i, set := range coverSets {
			if set == nil {
				continue
			}
			count := 0
			for m := range set {
				if !covered[m] {
					count++
				}
			}
			// Ties keep the first-encountered candidate.
			if count > bestCount {
				best, bestCount = i, count
			}
		}
		if best < 0 {
			break
		}
		take(best)
	}
	return selected
}

// reconstruct turns selected implicants back into a tree: each implicant
// becomes a conjunction of its care literals in variable sort order, and
// the conjunctions are joined by disjunction in selection order.
func reconstruct(imps []implicant, vars []string) (expr.Expr, bool) {
	var terms []expr.Expr
	for _, imp := range imps {
		var term expr.Expr
		for p, name := range vars {
			bit := uint64(1) << p
			if imp.mask&bit == 0 {
				continue
			}
			var lit expr.Expr = expr.Ident{Name: name}
			if imp.value&bit == 0 {
				lit = expr.Not{X: lit}
			}
			if term == nil {
				term = lit
			} else {
				term = expr.And{L: term, R: lit}
			}
		}
		if term != nil {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, false
	}
	out := terms[0]
	for _, t := range terms[1:] {
		out = expr.Or{L: out, R: t}
	}
	return out, true
}

// unionInts merges two sorted, duplicate-free int slices.
func unionInts(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
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
