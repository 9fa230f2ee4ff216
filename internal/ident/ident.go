// Package ident derives compose-safe identifiers from operator input.
package ident

import "strings"

// Sanitize lower-cases raw and replaces every rune outside [a-z0-9_-] with
// '_'. It never fails: the empty string maps to the empty string, and callers
// that need a non-empty identifier must reject that upstream.
//
//	"apache_app" → "apache_app"
//	"My App!"    → "my_app_"
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, strings.ToLower(raw))
}
