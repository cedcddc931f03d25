// Package sanitize strips markup from user-supplied text fields.
//
// Names and descriptions are stored and echoed back as plain text, so
// the strict bluemonday policy (no tags at all) is the right fit.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s, leaving only the text content.
func Text(s string) string {
	return strict.Sanitize(s)
}
