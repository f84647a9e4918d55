package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Config holds the detected conventions that shape synthesized components.
type Config struct {
	UseStandalone bool
	UseTailwind   bool
	UseSignals    bool
}

// Inspection is the per-signal outcome behind a Config.
type Inspection struct {
	Standalone Check
	Tailwind   Check
	Signals    Check

	// AngularVersion is the raw @angular/core version string, if any.
	AngularVersion string
}

// Config reduces the inspection to its three flags.
func (i Inspection) Config() Config {
	return Config{
		UseStandalone: i.Standalone.Value,
		UseTailwind:   i.Tailwind.Value,
		UseSignals:    i.Signals.Value,
	}
}

// Detect returns the project conventions found in root. It never fails;
// any signal that cannot be evaluated is false.
func Detect(root string) Config {
	return Inspect(root).Config()
}

// Inspect evaluates each signal independently so a failure in one never
// affects the others.
func Inspect(root string) Inspection {
	insp := Inspection{
		Standalone: detectStandalone(root),
		Tailwind:   detectTailwind(root),
	}
	insp.Signals, insp.AngularVersion = detectSignals(root)
	return insp
}

func detectStandalone(root string) Check {
	path := filepath.Join(root, filepath.FromSlash(MainFile))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fail(MainFile + " not found")
		}
		return undetermined(fmt.Errorf("reading %s: %w", MainFile, err))
	}
	if !strings.Contains(string(data), bootstrapMarker) {
		return fail(MainFile + " does not call " + bootstrapMarker)
	}
	return pass()
}

func detectTailwind(root string) Check {
	for _, name := range tailwindConfigs {
		if exists(filepath.Join(root, name)) {
			return pass()
		}
	}
	return fail("no Tailwind configuration found")
}

func detectSignals(root string) (Check, string) {
	pkg, err := readPackage(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fail(PackageFile + " not found"), ""
		}
		return undetermined(err), ""
	}

	version := pkg.Dependencies[CorePackage]
	if version == "" {
		return fail(CorePackage + " is not a dependency"), ""
	}

	major, err := MajorVersion(version)
	if err != nil {
		return undetermined(fmt.Errorf("%w: %s version %q: %v", ErrParse, CorePackage, version, err)), version
	}
	if major < signalsMajor {
		return fail(fmt.Sprintf("%s v%d predates Signals (v%d+)", CorePackage, major, signalsMajor)), version
	}
	return pass(), version
}

// MajorVersion extracts the major version from a dependency range such as
// "^17.0.0", "~16.2.1" or ">=18". The leading token's non-digit prefix is
// stripped, then the remainder is parsed as a semantic version; when that
// fails the leading run of digits is used.
func MajorVersion(constraint string) (int, error) {
	fields := strings.Fields(constraint)
	if len(fields) == 0 {
		return 0, errors.New("empty version")
	}

	tok := strings.TrimLeftFunc(fields[0], func(r rune) bool { return !unicode.IsDigit(r) })
	if tok == "" {
		return 0, fmt.Errorf("no digits in %q", fields[0])
	}

	if v, err := semver.NewVersion(tok); err == nil {
		return int(v.Major()), nil
	}

	end := strings.IndexFunc(tok, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(tok)
	}
	return strconv.Atoi(tok[:end])
}
