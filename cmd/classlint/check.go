package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	batch "github.com/yacobolo/classlint/internal/classlint"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Check class names across a project tree",
	Long: `Walk a directory (or the configured glob patterns), extract class
tokens from HTML, JSX/TSX, CSS, and SCSS files, and validate each one.
Exits 1 when any invalid class name is found.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns to scan instead of walking the directory")
	f.String("format", "text", "Output format: text | json")
	f.Int("workers", 0, "Scan concurrency (0 = one per CPU)")
	f.Bool("allow-unknown", false, "Treat unrecognized tokens as passing")
	f.Bool("strict-bem", false, "Reject utility-shaped tokens")
	f.StringSlice("custom-utilities", nil, "Additional anchored regexp sources for utility tokens")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (classlint) suffix")
}

func runCheck(args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	engine, err := buildEngineConfig()
	if err != nil {
		return err
	}

	cfg := buildScanConfig(root)
	cfg.Engine = engine

	result, err := batch.Scan(cfg)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := getStringWithFallback("format", "check.format", "text")

	if !quiet {
		switch format {
		case "json":
			if err := batch.WriteJSON(os.Stdout, result); err != nil {
				return fmt.Errorf("writing JSON: %w", err)
			}
		case "text":
			reporter := batch.NewReporter(os.Stdout, cfg)
			reporter.PrintIssues(result.Issues)
			reporter.PrintSummary(result)
		default:
			return fmt.Errorf("unknown output format %q (want text or json)", format)
		}
	}

	if result.HasIssues() {
		os.Exit(1)
	}
	return nil
}
