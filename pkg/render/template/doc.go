// Package template defines the template engine contract used by the
// template renderer, with a pongo2-backed adapter in the gotemplate
// subpackage.
package template
