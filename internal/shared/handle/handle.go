// Package handle normalizes and validates store handles.
// A handle is the public @-prefixed slug a storefront lives under,
// e.g. "@coffee-corner" -> /shop/@coffee-corner.
package handle

import (
	"regexp"
	"strings"
)

var (
	valid    = regexp.MustCompile(`^@[a-z0-9][a-z0-9_-]{2,29}$`)
	nonAlnum = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// Normalize lowercases, strips junk and guarantees the @ prefix.
// The result is not necessarily valid; call Valid afterwards.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "@")
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return "@" + s
}

func Valid(s string) bool {
	return valid.MatchString(s)
}

// FromName derives a handle candidate from a store name.
func FromName(name string) string {
	h := Normalize(name)
	if !Valid(h) {
		return "@store"
	}
	return h
}
