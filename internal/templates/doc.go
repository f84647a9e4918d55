// Package templates loads pre-authored component templates. A templates root
// holds one directory per component; each directory contains some of
// <name>.component.ts, <name>.component.html and <name>.component.spec.ts,
// plus an optional template.yaml describing the entry for the catalog.
//
// Template files are copied byte for byte. They are never run through a
// template engine.
package templates
