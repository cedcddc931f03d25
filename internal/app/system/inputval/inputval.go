// Package inputval holds small reusable input validators.
package inputval

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidEmail reports whether s parses as an RFC 5322 address with
// a dotted domain. mail.ParseAddress alone accepts "a@b", which no
// real mail host resolves.
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return strings.Contains(s[at+1:], ".")
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidObjectID reports whether s is a well-formed Mongo ObjectID hex.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// MaxLen reports whether s is at most n characters (runes, not bytes).
func MaxLen(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}
