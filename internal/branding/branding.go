// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

const logo = `
██╗    ██╗ █████╗ ██╗     ██╗  ██╗   ██╗
██║    ██║██╔══██╗██║     ██║  ╚██╗ ██╔╝
██║ █╗ ██║███████║██║     ██║   ╚████╔╝
██║███╗██║██╔══██║██║     ██║    ╚██╔╝
╚███╔███╔╝██║  ██║███████╗███████╗██║
 ╚══╝╚══╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝
`

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "wally",
			DisplayName: "Wally",
			Description: "Beautiful Angular components for your project",
			HomeDir:     ".wally",
			EnvPrefix:   "WALLY",
			GoModule:    "github.com/wally-labs/wally",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "wally").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Wally").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".wally").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "WALLY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// Banner returns the ASCII logo followed by the product description.
func Banner() string {
	load()
	return logo + "\n " + defaults.Description + "\n"
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("templates") → "WALLY_TEMPLATES".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
