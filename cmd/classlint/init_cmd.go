package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// rcFileName is the JSON lint-config file managed by init.
const rcFileName = ".classlintrc.json"

// requiredPlugins are the plugin paths init guarantees are present in the
// rc file's "plugins" array.
var requiredPlugins = []string{
	"classlint/plugins/naming",
	"classlint/plugins/selectors",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update " + rcFileName,
	Long: `Create ` + rcFileName + ` in the current directory, or update an
existing one: the classlint plugin paths are appended to its "plugins"
array if absent. All other fields are preserved and repeated runs make
no further changes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("rc")
		if path == "" {
			path = rcFileName
		}

		changed, created, err := ensureRCFile(path)
		if err != nil {
			return err
		}

		switch {
		case created:
			fmt.Printf("Created %s\n", path)
		case changed:
			fmt.Printf("Updated %s\n", path)
		default:
			fmt.Printf("%s already up to date\n", path)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().String("rc", "", "Path of the rc file to manage (default: "+rcFileName+")")
}

// ensureRCFile reads or creates the rc file and appends the required plugin
// paths to its "plugins" array if absent. Unknown fields pass through
// untouched. Returns whether the file changed and whether it was created.
func ensureRCFile(path string) (changed, created bool, err error) {
	data := map[string]any{}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		created = true
	case err != nil:
		return false, false, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return false, false, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	plugins, _ := data["plugins"].([]any)
	for _, want := range requiredPlugins {
		if !containsPlugin(plugins, want) {
			plugins = append(plugins, want)
			changed = true
		}
	}

	if !changed && !created {
		return false, false, nil
	}

	data["plugins"] = plugins
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, false, fmt.Errorf("encoding %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return false, false, fmt.Errorf("writing %s: %w", path, err)
	}
	return changed, created, nil
}

func containsPlugin(plugins []any, want string) bool {
	for _, p := range plugins {
		if s, ok := p.(string); ok && s == want {
			return true
		}
	}
	return false
}
