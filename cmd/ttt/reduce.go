package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/ttt/internal/eval"
	"github.com/rfaulhaber/ttt/internal/expr"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [expression...]",
	Short: "Reduce a boolean expression to a minimal sum of products",
	Long: `Reduce a boolean expression with Quine-McCluskey minimization.
The result is simplified, not guaranteed minimal: cover selection falls back
to a greedy heuristic. Example) ttt reduce "a or (a and b)"`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := formatter()
		if err != nil {
			fail("invalid output format", err)
		}
		src, err := singleExpression(args)
		if err != nil {
			fail("failed to read expression", err)
		}
		e, err := expr.Parse(src)
		if err != nil {
			fail("failed to parse expression", err)
		}
		reduction, err := eval.Reduce(e, limits())
		if err != nil {
			fail("expression reduction failed", err)
		}
		fmt.Print(out.Reduction(reduction))
	},
}
