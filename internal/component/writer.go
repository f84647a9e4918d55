package component

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyBatch is returned when Write is called without any files.
var ErrEmptyBatch = errors.New("no files to write")

// WriteError reports the path that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result holds the outcome of a Write call.
type Result struct {
	Dir     string
	Written []File
}

// Write creates basePath (with parents) and writes every file into it,
// replacing existing files. Files are written in order; on the first
// failure the partial Result is returned together with a *WriteError.
// Files already written are left in place.
func Write(basePath string, files []File) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}

	result := &Result{Dir: basePath}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return result, &WriteError{Path: basePath, Err: err}
	}

	for _, f := range files {
		path := filepath.Join(basePath, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return result, &WriteError{Path: path, Err: err}
		}
		result.Written = append(result.Written, f)
	}

	return result, nil
}
