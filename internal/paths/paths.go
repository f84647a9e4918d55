// Package paths resolves where component templates are read from.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wally-labs/wally/internal/branding"
	"github.com/wally-labs/wally/internal/config"
)

// TemplatesDirName is the directory searched beside the installed binary.
const TemplatesDirName = "templates"

// Source names where a templates location came from.
type Source string

const (
	SourceFlag       Source = "flag"
	SourceEnv        Source = "env"
	SourceConfig     Source = "config"
	SourceExecutable Source = "executable"
	SourceBuiltin    Source = "builtin"
)

// TemplatesLocation is a resolved templates root. Dir is empty when the
// built-in templates should be used.
type TemplatesLocation struct {
	Dir    string
	Source Source
}

func (l TemplatesLocation) String() string {
	if l.Source == SourceBuiltin {
		return "built-in templates"
	}
	return fmt.Sprintf("%s (%s)", l.Dir, l.Source)
}

// executable is swapped in tests.
var executable = os.Executable

// ResolveTemplatesDir picks the templates root, checking in order:
//  1. the --templates flag value
//  2. the <PREFIX>_TEMPLATES env var
//  3. the templates_dir config key
//  4. ../templates relative to the running binary
//  5. the built-in templates
//
// An explicitly configured directory (1-3) that does not exist is an error.
func ResolveTemplatesDir(flagValue string) (TemplatesLocation, error) {
	explicit := []struct {
		dir    string
		source Source
	}{
		{flagValue, SourceFlag},
		{os.Getenv(branding.EnvVar("TEMPLATES")), SourceEnv},
		{config.Get(config.KeyTemplatesDir), SourceConfig},
	}
	for _, e := range explicit {
		if e.dir == "" {
			continue
		}
		if !isDir(e.dir) {
			return TemplatesLocation{}, fmt.Errorf("templates directory %s (from %s) does not exist", e.dir, e.source)
		}
		return TemplatesLocation{Dir: e.dir, Source: e.source}, nil
	}

	if dir, ok := besideExecutable(); ok {
		return TemplatesLocation{Dir: dir, Source: SourceExecutable}, nil
	}

	return TemplatesLocation{Source: SourceBuiltin}, nil
}

// besideExecutable returns <bindir>/../templates when it exists.
func besideExecutable() (string, bool) {
	exe, err := executable()
	if err != nil {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Join(filepath.Dir(exe), "..", TemplatesDirName)
	if !isDir(dir) {
		return "", false
	}
	return filepath.Clean(dir), true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
