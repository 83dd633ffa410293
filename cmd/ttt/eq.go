package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/ttt/internal/eval"
	"github.com/rfaulhaber/ttt/internal/expr"
)

var eqCmd = &cobra.Command{
	Use:   "eq [left] [right]",
	Short: "Check whether two boolean expressions are equivalent",
	Long: `Check whether two boolean expressions are logically equivalent.
Expressions are read as two arguments, or as two stdin lines when none are
given. Example) ttt eq "a and b" "b and a"`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := formatter()
		if err != nil {
			fail("invalid output format", err)
		}
		leftSrc, rightSrc, err := expressionPair(args)
		if err != nil {
			fail("failed to read expressions", err)
		}
		left, err := expr.Parse(leftSrc)
		if err != nil {
			fail("failed to parse left expression", err)
		}
		right, err := expr.Parse(rightSrc)
		if err != nil {
			fail("failed to parse right expression", err)
		}
		check, err := eval.CheckEquivalence(left, right, limits())
		if err != nil {
			fail("equivalence check failed", err)
		}
		fmt.Print(out.Equivalence(check, leftSrc, rightSrc))
	},
}
