// Package component defines the file set that makes up one generated Angular
// component, the naming rules applied to component identifiers, and the
// writer that materializes a file set into a project directory.
package component
