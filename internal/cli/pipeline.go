package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wally-labs/wally/internal/branding"
	"github.com/wally-labs/wally/internal/component"
	"github.com/wally-labs/wally/internal/paths"
	"github.com/wally-labs/wally/internal/project"
	"github.com/wally-labs/wally/internal/synth"
	"github.com/wally-labs/wally/internal/templates"
	"github.com/wally-labs/wally/internal/ui"
)

// requireAngularProject fails unless projectDir is an Angular project.
func requireAngularProject(p *ui.Printer) error {
	check := project.Validate(projectDir)
	if check.Value {
		return nil
	}
	if !check.Determined() {
		p.Debug("project validation: %v", check.Err)
	}
	p.Muted("Run %s inside an Angular project (angular.json and package.json with %s).",
		branding.CLIName(), project.CorePackage)
	return fmt.Errorf("%w: %s", project.ErrNotAngular, check.Explain())
}

// openTemplates resolves the templates root for this invocation.
func openTemplates() (fs.FS, paths.TemplatesLocation, error) {
	loc, err := paths.ResolveTemplatesDir(templatesFlag)
	if err != nil {
		return nil, loc, err
	}
	if loc.Source == paths.SourceBuiltin {
		return templates.Builtin(), loc, nil
	}
	return os.DirFS(loc.Dir), loc, nil
}

// loadTemplate loads name from the templates root, reporting each file.
func loadTemplate(p *ui.Printer, name string) ([]component.File, error) {
	fsys, loc, err := openTemplates()
	if err != nil {
		return nil, err
	}

	p.Info("📁 Loading template from: %s", loc)
	report, err := templates.LoadReport(fsys, name)
	if err != nil {
		return nil, err
	}

	for _, f := range report.Files {
		p.Success("  ✅ %s loaded", f.Name)
	}
	for _, s := range report.Skipped {
		if s.Err != nil {
			p.Warn("  ⚠️  could not read %s: %v", s.File, s.Err)
			continue
		}
		p.Muted("  ➖ %s not found (optional)", s.File)
	}
	return report.Files, nil
}

// synthesize inspects the project and renders name inline.
func synthesize(p *ui.Printer, name string) []component.File {
	p.Info("🔍 Analyzing project configuration...")
	insp := project.Inspect(projectDir)

	signals := []struct {
		label string
		check project.Check
	}{
		{"Standalone components detected", insp.Standalone},
		{"Tailwind CSS detected", insp.Tailwind},
		{fmt.Sprintf("Angular Signals available (%s)", insp.AngularVersion), insp.Signals},
	}
	undetermined := false
	for _, s := range signals {
		switch {
		case s.check.Value:
			p.Success("  ✅ %s", s.label)
		case !s.check.Determined():
			undetermined = true
			p.Debug("%v", s.check.Err)
		default:
			p.Debug("%s", s.check.Reason)
		}
	}
	if undetermined {
		p.Warn("  ⚠️  Some settings could not be determined; using defaults")
	}

	return synth.Synthesize(name, insp.Config())
}

// materialize resolves the components directory and writes files into
// <components>/<name>. With dryRun only the plan is printed.
func materialize(p *ui.Printer, name string, files []component.File, dryRun bool) error {
	res := project.ResolveComponentsPath(projectDir)
	if res.Err != nil {
		p.Debug("components path: %v", res.Err)
	}
	if res.Exists {
		p.Success("📁 Using: %s", res.Path)
	} else {
		p.Warn("📁 Creating: %s", res.Path)
	}

	target := filepath.Join(projectDir, res.Path, name)

	if dryRun {
		p.Info("\n📝 Would write %d files to %s:", len(files), target)
		for _, f := range files {
			p.Muted("  • %s (%s)", f.Name, f.Description)
		}
		return nil
	}

	p.Info("\n📝 Writing %d files...", len(files))
	result, err := component.Write(target, files)
	if result != nil {
		for _, f := range result.Written {
			p.Success("  ✅ %s", f.Name)
		}
	}
	if err != nil {
		return fmt.Errorf("creating files: %w", err)
	}

	printNextSteps(p, name)
	return nil
}

func printNextSteps(p *ui.Printer, name string) {
	selector := component.Selector(name)
	p.Success("\n🎉 Component created successfully!")
	p.Info("\n💡 Next steps:")
	p.Muted("1. Import %s", component.ClassName(name))
	p.Muted("2. Add it to the imports of your module or component")
	p.Muted("3. Use <%s></%s>", selector, selector)
}
