//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // WALLY_HOME, holds config.yaml
	TemplatesDir string // a templates root with one directory per component
	ProjectDir   string // a mock Angular project
}

// setupTestEnv creates isolated temp directories and points WALLY_HOME at
// one of them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		ProjectDir:   t.TempDir(),
	}

	t.Setenv("WALLY_HOME", env.HomeDir)
	t.Setenv("WALLY_TEMPLATES", "")

	return env
}

// setupProject writes package.json and angular.json for an Angular project
// at the given @angular/core version with the given sourceRoot.
func setupProject(t *testing.T, projectDir, coreVersion, sourceRoot string) {
	t.Helper()

	writeFile(t, filepath.Join(projectDir, "package.json"), `{
  "name": "demo",
  "dependencies": {
    "@angular/core": "`+coreVersion+`",
    "rxjs": "~7.8.0"
  },
  "devDependencies": {
    "@angular/cli": "`+coreVersion+`"
  }
}
`)
	writeFile(t, filepath.Join(projectDir, "angular.json"), `{
  "version": 1,
  "newProjectRoot": "projects",
  "projects": {
    "web": {
      "projectType": "application",
      "root": "",
      "sourceRoot": "`+sourceRoot+`"
    },
    "admin": {
      "projectType": "application",
      "root": "projects/admin",
      "sourceRoot": "projects/admin/src"
    }
  }
}
`)
}

// setupTemplates creates button (all three files) and badge (TypeScript
// only) under templatesDir.
func setupTemplates(t *testing.T, templatesDir string) {
	t.Helper()

	writeFile(t, filepath.Join(templatesDir, "button", "template.yaml"), `name: button
description: Primary action button
version: "1.0.0"
status: stable
tags:
  - forms
`)
	writeFile(t, filepath.Join(templatesDir, "button", "button.component.ts"), "export class ButtonComponent {}\n")
	writeFile(t, filepath.Join(templatesDir, "button", "button.component.html"), "<button (click)=\"onClick()\">{{ label }}</button>\n")
	writeFile(t, filepath.Join(templatesDir, "button", "button.component.spec.ts"), "describe('ButtonComponent', () => {});\n")

	writeFile(t, filepath.Join(templatesDir, "badge", "badge.component.ts"), "export class BadgeComponent {}\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileEquals fails if the file doesn't exist or differs from want.
func assertFileEquals(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s = %q, want %q", path, data, want)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
