package cli

import (
	"github.com/spf13/cobra"
	"github.com/wally-labs/wally/internal/branding"
	"github.com/wally-labs/wally/internal/component"
)

var generateDryRun bool

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Show what would be written without writing")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate <component>",
	Aliases: []string{"g"},
	Short:   "Generate a component inline for this project",
	Long: `Generate a TypeScript, HTML and CSS file set for a new component without a
template. The output follows the project's conventions: standalone components
when src/main.ts calls bootstrapApplication, Tailwind utility classes when a
Tailwind config exists, and Signals for @angular/core 17 or later.`,
	Example: "  " + branding.CLIName() + " generate profile-card",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		name := args[0]

		if err := component.ValidateName(name); err != nil {
			return err
		}
		if err := requireAngularProject(p); err != nil {
			return err
		}

		p.Title("\n🎯 Generating component: %s", name)
		files := synthesize(p, name)
		return materialize(p, name, files, generateDryRun)
	},
}
