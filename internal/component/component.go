package component

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// File is one generated or loaded component file.
type File struct {
	Name        string // file name relative to the component directory
	Content     string // raw text, written verbatim
	Description string // human label shown while writing
}

// ErrInvalidName is returned when a component identifier fails validation.
var ErrInvalidName = errors.New("invalid component name")

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateName checks that name is a kebab-case identifier safe to use as a
// directory name, a CSS class prefix, and the stem of a TypeScript class.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must match pattern [a-z][a-z0-9]*(-[a-z0-9]+)*", ErrInvalidName, name)
	}
	return nil
}

// PascalName converts a kebab-case name to PascalCase, e.g. "date-picker" → "DatePicker".
func PascalName(name string) string {
	// A Caser is stateful, so each call gets its own.
	caser := cases.Title(language.English)
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// ClassName returns the Angular class name for a component, e.g. "ButtonComponent".
func ClassName(name string) string {
	return PascalName(name) + "Component"
}

// Selector returns the element selector for a component, e.g. "app-button".
func Selector(name string) string {
	return "app-" + name
}

// FileName returns "<name>.component.<ext>".
func FileName(name, ext string) string {
	return name + ".component." + ext
}
