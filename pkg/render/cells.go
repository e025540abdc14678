package render

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var cellReplacer = strings.NewReplacer(
	"\r\n", "<br>",
	"\r", "<br>",
	"\n", "<br>",
	"|", `\|`,
)

// EscapeCell makes value safe to place inside a Markdown table cell: pipes are
// escaped and line breaks become <br> so a row always stays on one line.
func EscapeCell(value string) string {
	return cellReplacer.Replace(value)
}

// Sanitizer rewrites cell text before it is escaped.
type Sanitizer func(string) string

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// StripMarkup removes every HTML element from value, keeping the text content.
// Entities produced by the sanitiser are decoded again so Markdown output
// keeps literal characters such as quotes and ampersands.
func StripMarkup(value string) string {
	if !strings.ContainsAny(value, "<>&") {
		return value
	}
	cleaned := markupSanitizer().Sanitize(value)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
