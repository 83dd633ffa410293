package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/ttt/internal/eval"
	"github.com/rfaulhaber/ttt/internal/expr"
)

var tableCmd = &cobra.Command{
	Use:   "table [expression...]",
	Short: "Generate a truth table from a boolean expression",
	Long: `Generate a truth table from a boolean expression.
The expression is read from the arguments, or from stdin when none are given.
Example) ttt table "a and (b or not c)"`,
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
		table, err := eval.BuildTruthTable(e, limits())
		if err != nil {
			fail("truth table generation failed", err)
		}
		fmt.Print(out.TruthTable(table))
	},
}
