package project

import (
	"path/filepath"
)

const defaultSourceRoot = "src"

// DefaultComponentsPath is used when angular.json cannot be read.
var DefaultComponentsPath = filepath.Join("src", "app", "components")

// Resolution is the outcome of ResolveComponentsPath.
type Resolution struct {
	Path       string // relative to the project root
	Exists     bool   // Path already exists on disk
	Project    string // project whose sourceRoot was used, if any
	SourceRoot string
	Err        error // set when angular.json could not be read
}

// Candidates returns the component directories probed for a source root,
// most specific first.
func Candidates(sourceRoot string) []string {
	return []string{
		filepath.Join(sourceRoot, "app", "components"),
		filepath.Join(sourceRoot, "app", "shared", "components"),
		filepath.Join(sourceRoot, "app"),
	}
}

// ResolveComponentsPath picks the directory new components are written to.
// The sourceRoot of the first project in angular.json (default "src") seeds
// the candidate list; the first candidate that exists under root wins, or
// the first candidate when none exist. An unreadable angular.json yields
// DefaultComponentsPath.
func ResolveComponentsPath(root string) Resolution {
	desc, err := readDescriptor(root)
	if err != nil {
		return Resolution{
			Path:       DefaultComponentsPath,
			Exists:     exists(filepath.Join(root, DefaultComponentsPath)),
			SourceRoot: defaultSourceRoot,
			Err:        err,
		}
	}

	res := Resolution{SourceRoot: defaultSourceRoot}
	if name, p, ok := desc.FirstProject(); ok {
		res.Project = name
		if p.SourceRoot != "" {
			res.SourceRoot = filepath.FromSlash(p.SourceRoot)
		}
	}

	candidates := Candidates(res.SourceRoot)
	for _, c := range candidates {
		if exists(filepath.Join(root, c)) {
			res.Path = c
			res.Exists = true
			return res
		}
	}

	res.Path = candidates[0]
	return res
}
