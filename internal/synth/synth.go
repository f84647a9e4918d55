// Package synth renders a complete Angular component (behavior, markup and
// styles) from built-in templates, shaped by the project's detected
// conventions. Rendering is a pure function of its inputs.
package synth

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/wally-labs/wally/internal/component"
	"github.com/wally-labs/wally/internal/project"
)

// Angular markup uses {{ }}, so the built-in templates use [[ ]].
//
//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("synth").Delims("[[", "]]").ParseFS(templateFS, "templates/*.tmpl"))

// Data holds the values interpolated into the built-in templates.
type Data struct {
	Name         string // component identifier, e.g. "date-picker"
	ClassName    string // e.g. "DatePickerComponent"
	Selector     string // e.g. "app-date-picker"
	Title        string // initial title, e.g. "DatePicker Component"
	TitleBinding string // markup expression for the title
	CountBinding string // markup expression for the click count

	project.Config
}

// NewData derives the template values for name under cfg.
func NewData(name string, cfg project.Config) Data {
	d := Data{
		Name:         name,
		ClassName:    component.ClassName(name),
		Selector:     component.Selector(name),
		Title:        component.PascalName(name) + " Component",
		TitleBinding: "{{ title }}",
		CountBinding: "{{ clickCount }}",
		Config:       cfg,
	}
	if cfg.UseSignals {
		// Signals are read by calling them.
		d.TitleBinding = "{{ title() }}"
		d.CountBinding = "{{ clickCount() }}"
	}
	return d
}

// Synthesize returns the TypeScript, HTML and CSS files for name. It never
// fails and performs no I/O.
func Synthesize(name string, cfg project.Config) []component.File {
	d := NewData(name, cfg)

	htmlTmpl, cssTmpl := "component.html.tmpl", "component.css.tmpl"
	if cfg.UseTailwind {
		htmlTmpl, cssTmpl = "component.tailwind.html.tmpl", "component.tailwind.css.tmpl"
	}

	return []component.File{
		{
			Name:        component.FileName(name, "ts"),
			Content:     render("component.ts.tmpl", d),
			Description: "Main component",
		},
		{
			Name:        component.FileName(name, "html"),
			Content:     render(htmlTmpl, d),
			Description: "HTML template",
		},
		{
			Name:        component.FileName(name, "css"),
			Content:     render(cssTmpl, d),
			Description: "CSS styles",
		},
	}
}

// render executes one built-in template. The templates and Data are fixed
// at build time, so an execution error is a bug in this package.
func render(name string, d Data) string {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, d); err != nil {
		panic(fmt.Sprintf("synth: rendering %s: %v", name, err))
	}
	return buf.String()
}
