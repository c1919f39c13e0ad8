package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/internal/metadata"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <script>",
	Short: "Show the metadata header of a built script",
	Long: `Read the "// ==UserScript==" block of an existing script and list its
entries in order.

Examples:
  monkeyscript inspect dist/main.user.js
  monkeyscript inspect dist/main.user.js --json`,
	Args: RequireScript,
	RunE: runInspect,
}

var inspectJSON bool

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output entries as JSON")
}

type inspectEntry struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	header, err := metadata.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	if inspectJSON {
		entries := make([]inspectEntry, 0, len(header.Entries))
		for _, e := range header.Entries {
			entries = append(entries, inspectEntry{Tag: e.Tag, Value: e.Value})
		}
		jsonBytes, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range header.Entries {
		fmt.Fprintf(tw, "@%s\t%s\n", e.Tag, e.Value)
	}
	return tw.Flush()
}
