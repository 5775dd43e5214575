package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classlint"
	batch "github.com/yacobolo/classlint/internal/classlint"
)

var validateCmd = &cobra.Command{
	Use:   "validate TOKEN...",
	Short: "Classify individual class tokens",
	Long: `Classify each token given on the command line and print its kind,
or a diagnostic explaining why it is invalid. Exits 1 when any token
fails validation.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	f := validateCmd.Flags()
	f.Bool("allow-unknown", false, "Treat unrecognized tokens as passing")
	f.Bool("strict-bem", false, "Reject utility-shaped tokens")
	f.StringSlice("custom-utilities", nil, "Additional anchored regexp sources for utility tokens")
}

func runValidate(tokens []string) error {
	engine, err := buildEngineConfig()
	if err != nil {
		return err
	}

	useColors := getBoolWithFallback("color", "color", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	invalid := 0
	for _, token := range tokens {
		result := classlint.ValidateClassName(token, engine)
		if !result.Valid {
			invalid++
		}
		if quiet {
			continue
		}

		switch {
		case result.Valid && result.Kind != classlint.KindNone:
			fmt.Printf("%s %s: %s\n",
				batch.RenderStyle(batch.StyleGreen, "ok", useColors), token, result.Kind)
		case result.Valid:
			// allow-unknown pass: untyped but not a failure
			fmt.Printf("%s %s: %s\n",
				batch.RenderStyle(batch.StyleYellow, "ok", useColors), token, result.Message)
		default:
			fmt.Printf("%s %s\n",
				batch.RenderStyle(batch.StyleRed, "invalid", useColors), result.Message)
		}
	}

	if invalid > 0 {
		os.Exit(1)
	}
	return nil
}
