// Package normalize canonicalizes user-supplied string fields before
// they are validated or stored.
package normalize

import "strings"

// Email trims whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Text trims whitespace from free-form text such as descriptions.
func Text(s string) string {
	return strings.TrimSpace(s)
}
