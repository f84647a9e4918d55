package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wally-labs/wally/internal/branding"
	"github.com/wally-labs/wally/internal/config"
	"github.com/wally-labs/wally/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags shared by every command.
var (
	projectDir    string
	templatesFlag string
	debugFlag     bool
	noColorFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: "Angular component generator",
	Long: branding.DisplayName() + ` adds ready-made Angular components to your project. Components are
copied from templates, or generated inline to match the conventions detected
in the project (standalone components, Tailwind CSS, Signals).`,
	Example:       fmt.Sprintf("  %[1]s add button\n  %[1]s add card\n  %[1]s generate profile-card", branding.CLIName()),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if noColorFlag {
			ui.DisableColor()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&projectDir, "dir", "C", ".", "Angular project root")
	pf.StringVar(&templatesFlag, "templates", "", "Templates directory (overrides "+branding.EnvVar("TEMPLATES")+" and config)")
	pf.BoolVar(&debugFlag, "debug", false, "Print debug diagnostics")
	pf.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	// The banner is shown only for top-level help.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			newPrinter(cmd).Banner(branding.Banner())
		}
		defaultHelp(cmd, args)
	})
}

// Execute runs the root command with build info injected via ldflags.
// Any command failure is printed and returned so main can exit non-zero.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		newPrinter(rootCmd).Error("\n❌ %v", err)
		return err
	}
	return nil
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), debugFlag || config.GetBool(config.KeyDebug))
}
