// Package project inspects an Angular workspace on disk. It confirms the
// working directory is an Angular project, detects the conventions that
// shape synthesized components (standalone bootstrap, Tailwind CSS, Signals),
// and resolves the directory new components are written to.
//
// Probes never return an error. Each one yields a Check that
// carries an explicit default plus an optional diagnostic, so callers can
// tell "legitimately false" apart from "could not determine".
package project
