package project

import "errors"

// Marker and configuration file names probed in the project root.
const (
	PackageFile    = "package.json"
	DescriptorFile = "angular.json"
	MainFile       = "src/main.ts"

	// CorePackage is the dependency key that identifies an Angular project.
	CorePackage = "@angular/core"

	bootstrapMarker = "bootstrapApplication"
	signalsMajor    = 17
)

// tailwindConfigs are the files whose presence signals Tailwind CSS.
var tailwindConfigs = []string{"tailwind.config.js", "tailwind.config.ts", "postcss.config.mjs"}

var (
	// ErrParse marks a manifest or descriptor that exists but could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrNotAngular is used by callers to report a failed project validation.
	ErrNotAngular = errors.New("not an Angular project")
)

// Check is the outcome of one filesystem probe.
type Check struct {
	Value  bool   // the answer, false when undetermined
	Reason string // why Value is false, when it was legitimately determined
	Err    error  // set when the probe could not be completed
}

// Determined reports whether the probe ran to completion.
func (c Check) Determined() bool { return c.Err == nil }

// Explain returns a one-line description of a false result.
func (c Check) Explain() string {
	if c.Err != nil {
		return c.Err.Error()
	}
	return c.Reason
}

func pass() Check { return Check{Value: true} }

func fail(reason string) Check { return Check{Reason: reason} }

func undetermined(err error) Check { return Check{Err: err} }
