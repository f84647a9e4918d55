package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/wally-labs/wally/internal/component"
)

var (
	// ErrNotFound is returned when no template directory matches the name.
	ErrNotFound = errors.New("template not found")

	// ErrEmptyTemplate is returned when a template directory holds none of
	// the expected files.
	ErrEmptyTemplate = errors.New("template has no component files")
)

// expectedFile describes one file a template may provide.
type expectedFile struct {
	ext         string
	description string
}

var expectedFiles = []expectedFile{
	{"ts", "TypeScript component"},
	{"html", "HTML template"},
	{"spec.ts", "Test file"},
}

// ExpectedFiles returns the file names a template named name may provide,
// in load order.
func ExpectedFiles(name string) []string {
	names := make([]string, len(expectedFiles))
	for i, e := range expectedFiles {
		names[i] = component.FileName(name, e.ext)
	}
	return names
}

// Skip records an expected file that was not loaded.
type Skip struct {
	File string
	Err  error // nil when the file is simply absent
}

// Report is the detailed outcome of loading one template.
type Report struct {
	Name    string
	Files   []component.File
	Skipped []Skip
}

// Load reads the template named name from fsys.
func Load(fsys fs.FS, name string) ([]component.File, error) {
	r, err := LoadReport(fsys, name)
	if err != nil {
		return nil, err
	}
	return r.Files, nil
}

// LoadReport reads the template named name from fsys and reports which
// expected files were skipped. Absent files are optional; only a template
// with none of them fails.
func LoadReport(fsys fs.FS, name string) (*Report, error) {
	if !isDirName(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	info, err := fs.Stat(fsys, name)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	report := &Report{Name: name}
	for _, e := range expectedFiles {
		fileName := component.FileName(name, e.ext)
		data, err := fs.ReadFile(fsys, path.Join(name, fileName))
		if err != nil {
			skip := Skip{File: fileName}
			if !errors.Is(err, fs.ErrNotExist) {
				skip.Err = err
			}
			report.Skipped = append(report.Skipped, skip)
			continue
		}

		report.Files = append(report.Files, component.File{
			Name:        fileName,
			Content:     string(data),
			Description: e.description,
		})
	}

	if len(report.Files) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, name)
	}
	return report, nil
}

// isDirName reports whether name is a single path element usable with fs.FS.
func isDirName(name string) bool {
	return name != "" && name != "." && fs.ValidPath(name) && !strings.Contains(name, "/")
}
