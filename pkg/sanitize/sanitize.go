package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Title strips all markup from single-line user input.
func Title(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Content allows the usual user-generated-content subset of HTML and drops
// everything else (scripts, event handlers, iframes).
func Content(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}
