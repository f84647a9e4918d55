package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wally-labs/wally/internal/branding"
	"github.com/wally-labs/wally/internal/templates"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available component templates",
	Long: `List every template directory in the templates root together with the
component files it provides and its template.yaml metadata.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)

	fsys, loc, err := openTemplates()
	if err != nil {
		return err
	}

	entries, err := templates.Discover(fsys)
	if err != nil {
		return err
	}

	if listJSON {
		if entries == nil {
			entries = []templates.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(p.Out(), string(data))
		return nil
	}

	p.Title("📦 Available components")
	p.Muted("   from %s\n", loc)

	if len(entries) == 0 {
		p.Warn("No templates found.")
		return nil
	}

	w := tabwriter.NewWriter(p.Out(), 0, 0, 2, ' ', 0)
	for _, e := range entries {
		mark := "✓"
		if !e.Available() || e.Status != templates.StatusStable {
			mark = "⚠"
		}
		files := strings.Join(e.Files, ", ")
		if !e.Available() {
			files = "no component files"
		}
		fmt.Fprintf(w, "  %s %s\t%s\t%s\t%s\n", mark, e.Name, e.Status, e.Description, files)
	}
	w.Flush()

	for _, e := range entries {
		for _, warning := range e.Warnings {
			p.Warn("  ⚠️  %s: %s", e.Name, warning)
		}
	}

	p.Info("\nUsage: %s add <component>", branding.CLIName())
	return nil
}
