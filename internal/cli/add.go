package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/wally-labs/wally/internal/branding"
	"github.com/wally-labs/wally/internal/component"
	"github.com/wally-labs/wally/internal/templates"
)

var errNoComponent = errors.New("specify the component to add")

var (
	addFallback bool
	addDryRun   bool
)

func init() {
	addCmd.Flags().BoolVar(&addFallback, "fallback", false, "Generate the component inline when no template exists")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Show what would be written without writing")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <component>",
	Short: "Add a component from its template",
	Long: `Copy a component template into the project's components directory.

The component directory is the first of <sourceRoot>/app/components,
<sourceRoot>/app/shared/components and <sourceRoot>/app that exists, using the
sourceRoot of the first project in angular.json. Existing files are overwritten.`,
	Example: "  " + branding.CLIName() + " add button\n  " + branding.CLIName() + " add profile-card --fallback",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		p.Warn("Example: %s add button", branding.CLIName())
		return errNoComponent
	}
	if err := component.ValidateName(name); err != nil {
		return err
	}
	if err := requireAngularProject(p); err != nil {
		return err
	}

	p.Title("\n🎯 Creating component: %s", name)

	files, err := loadTemplate(p, name)
	if err != nil {
		if !addFallback || !errors.Is(err, templates.ErrNotFound) {
			p.Muted("Check that the template exists with '%s list'.", branding.CLIName())
			return err
		}
		p.Warn("⚠️  No template for %q, generating it inline", name)
		files = synthesize(p, name)
	}

	return materialize(p, name, files, addDryRun)
}
