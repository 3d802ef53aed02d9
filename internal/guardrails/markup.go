package guardrails

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxMarkupPasses bounds the decode and strip loop for nested encodings such
// as &amp;lt;script&amp;gt;.
const maxMarkupPasses = 8

// StripMarkup removes HTML tags from text pasted by users (builder blocks often
// carry markup). Entities are decoded before each strip so encoded tags are
// removed too; the result never holds a tag bluemonday would strip.
func StripMarkup(input string) string {
	if !strings.ContainsAny(input, "<>&") {
		return input
	}

	current := input
	for range maxMarkupPasses {
		next := html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(current)))
		if next == current {
			return next
		}
		current = next
	}

	// Still changing: drop anything that could be read as a tag.
	return strings.NewReplacer("<", "", ">", "").Replace(current)
}
