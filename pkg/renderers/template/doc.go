// Package template renders documentation sets through pongo2 templates so
// teams can restyle the generated pages without touching Go code.
//
// Templates receive "object", "fields" (label, api_name, type) and "rules"
// (name, description, formula) plus the "cell" filter that escapes a value for
// a Markdown table cell.
package template
