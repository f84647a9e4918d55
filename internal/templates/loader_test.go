package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoadBehaviorFileOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"button/button.component.ts": {Data: []byte("export class ButtonComponent {}\n")},
	}

	files, err := Load(fsys, "button")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Load() returned %d files, want 1", len(files))
	}
	if files[0].Name != "button.component.ts" {
		t.Errorf("Name = %q", files[0].Name)
	}
	if files[0].Description != "TypeScript component" {
		t.Errorf("Description = %q", files[0].Description)
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"button":               {Mode: fs.ModeDir | 0755},
		"button/README.md":     {Data: []byte("notes")},
		"button/template.yaml": {Data: []byte("name: button\n")},
	}

	_, err := Load(fsys, "button")
	if !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("Load() error = %v, want ErrEmptyTemplate", err)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"card/card.component.ts": {Data: []byte("x")},
	}

	_, err := Load(fsys, "button")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsNonDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"button": {Data: []byte("a file, not a directory")},
	}

	_, err := Load(fsys, "button")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsPathNames(t *testing.T) {
	fsys := fstest.MapFS{
		"button/button.component.ts": {Data: []byte("x")},
	}
	for _, name := range []string{"", ".", "..", "../button", "button/..", "a/b", "/button"} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(fsys, name); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load(%q) error = %v, want ErrNotFound", name, err)
			}
		})
	}
}

func TestLoadReportOrderAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"button/button.component.spec.ts": {Data: []byte("describe()")},
		"button/button.component.ts":      {Data: []byte("export class ButtonComponent {}")},
	}

	r, err := LoadReport(fsys, "button")
	if err != nil {
		t.Fatalf("LoadReport() error: %v", err)
	}
	if len(r.Files) != 2 || r.Files[0].Name != "button.component.ts" || r.Files[1].Name != "button.component.spec.ts" {
		t.Errorf("Files = %+v, want ts then spec.ts", r.Files)
	}
	if len(r.Skipped) != 1 || r.Skipped[0].File != "button.component.html" || r.Skipped[0].Err != nil {
		t.Errorf("Skipped = %+v, want absent html", r.Skipped)
	}
}

func TestLoadPreservesBytes(t *testing.T) {
	root := t.TempDir()
	content := "// header\r\n{{ title }} ${name} \té\n"
	dir := filepath.Join(root, "button")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "button.component.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := Load(os.DirFS(root), "button")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if files[0].Content != content {
		t.Errorf("Content = %q, want %q", files[0].Content, content)
	}
}

func TestBuiltinButton(t *testing.T) {
	files, err := Load(Builtin(), "button")
	if err != nil {
		t.Fatalf("Load(builtin, button) error: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("builtin button has %d files, want 3", len(files))
	}
}

func TestExpectedFiles(t *testing.T) {
	got := ExpectedFiles("card")
	want := []string{"card.component.ts", "card.component.html", "card.component.spec.ts"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExpectedFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
