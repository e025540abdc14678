// Package html renders documentation sets as HTML by converting the Markdown
// document with goldmark's table extension. The result is passed through a
// bluemonday user-content policy, so descriptor text cannot inject scripts.
package html
