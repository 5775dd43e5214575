package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classlint"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Print the grammar pattern sources",
	Long: `Print the regexp source of each naming grammar. External rule
engines (editor plugins, stylelint-style wrappers) can consume these
directly; they are semantically identical to the grammars the checker
itself compiles.`,
	Run: func(_ *cobra.Command, _ []string) {
		patterns := []struct {
			name   string
			source string
		}{
			{"block", classlint.BlockSource},
			{"element", classlint.ElementSource},
			{"nested-element", classlint.NestedElementSource},
			{"modifier", classlint.ModifierSource},
			{"state", classlint.StateSource},
			{"any-bem", classlint.AnyBEMSource},
			{"any-bem-or-state", classlint.AnyBEMOrStateSource},
		}
		for _, p := range patterns {
			fmt.Printf("%-17s %s\n", p.name, p.source)
		}
	},
}
