// Package markdown renders documentation sets as GitHub-flavoured Markdown
// tables. Output is deterministic: identical sets always produce identical
// bytes.
package markdown
