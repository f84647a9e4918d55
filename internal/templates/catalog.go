package templates

import (
	"fmt"
	"io/fs"
	"path"
)

// Entry is one template found in a templates root.
type Entry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Version     string   `json:"version,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Files       []string `json:"files"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Available reports whether the entry has at least one component file.
func (e Entry) Available() bool { return len(e.Files) > 0 }

// Discover lists every template directory in fsys, sorted by name. Each
// entry is enriched with its template.yaml metadata when present; invalid
// metadata is reported as a warning and the defaults are kept.
func Discover(fsys fs.FS) ([]Entry, error) {
	dirs, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading templates root: %w", err)
	}

	var entries []Entry
	for _, d := range dirs {
		if !d.IsDir() || !isDirName(d.Name()) || d.Name()[0] == '.' {
			continue
		}
		entries = append(entries, describe(fsys, d.Name()))
	}
	return entries, nil
}

func describe(fsys fs.FS, name string) Entry {
	entry := Entry{Name: name, Status: StatusStable}

	for _, f := range ExpectedFiles(name) {
		if info, err := fs.Stat(fsys, path.Join(name, f)); err == nil && !info.IsDir() {
			entry.Files = append(entry.Files, f)
		}
	}

	meta, issues, err := readMetadata(fsys, name)
	switch {
	case err != nil:
		entry.Warnings = append(entry.Warnings, fmt.Sprintf("%s: %v", MetadataFile, err))
	case len(issues) > 0:
		for _, issue := range issues {
			entry.Warnings = append(entry.Warnings, fmt.Sprintf("%s: %s", MetadataFile, issue))
		}
	case meta != nil:
		if meta.Name != name {
			entry.Warnings = append(entry.Warnings,
				fmt.Sprintf("%s: name %q does not match directory %q", MetadataFile, meta.Name, name))
		}
		entry.Description = meta.Description
		entry.Status = meta.Status
		entry.Version = meta.Version
		entry.Tags = meta.Tags
	}

	return entry
}
