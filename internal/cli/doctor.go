package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wally-labs/wally/internal/config"
	"github.com/wally-labs/wally/internal/project"
	"github.com/wally-labs/wally/internal/templates"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the project and template setup",
	Long: `Run every detection the generator relies on and print the result,
including checks that could not be determined and why.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)

		p.Title("Project: %s", projectDir)
		valid := project.Validate(projectDir)
		p.Check("Angular project", valid.Value, diagnosis(valid))

		insp := project.Inspect(projectDir)
		p.Check("Standalone components", insp.Standalone.Value, diagnosis(insp.Standalone))
		p.Check("Tailwind CSS", insp.Tailwind.Value, diagnosis(insp.Tailwind))
		signalsLabel := "Angular Signals"
		if insp.AngularVersion != "" {
			signalsLabel = fmt.Sprintf("Angular Signals (%s %s)", project.CorePackage, insp.AngularVersion)
		}
		p.Check(signalsLabel, insp.Signals.Value, diagnosis(insp.Signals))

		res := project.ResolveComponentsPath(projectDir)
		p.Check(fmt.Sprintf("Components directory %s", res.Path), res.Exists, res.Err)
		if res.Project != "" {
			p.Muted("         from project %q (sourceRoot %s)", res.Project, res.SourceRoot)
		}

		p.Title("\nTemplates")
		fsys, loc, err := openTemplates()
		p.Check(fmt.Sprintf("Templates root %s", loc), err == nil, err)
		if err == nil {
			entries, err := templates.Discover(fsys)
			p.Check(fmt.Sprintf("%d templates found", len(entries)), err == nil && len(entries) > 0, err)
			for _, e := range entries {
				for _, warning := range e.Warnings {
					p.Warn("         %s: %s", e.Name, warning)
				}
			}
		}

		p.Title("\nConfig")
		p.Muted("  %s", config.FilePath())
		return nil
	},
}

// diagnosis returns the error doctor prints for c: the cause when c is
// undetermined, nil otherwise.
func diagnosis(c project.Check) error {
	if c.Determined() {
		return nil
	}
	return c.Err
}
