// Package labels turns raw target identifiers into metric-label-safe tokens.
//
// The token is only ever used as a label value; the raw URL or hostname
// stays the identity of the target everywhere else.
package labels

import "strings"

// Normalize converts a website URL into a label token: a leading
// http:// or https:// scheme is dropped, every character outside
// [A-Za-z0-9] becomes '_', and trailing underscores are trimmed.
// Total: any input, including the empty string, yields a result.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return NormalizeHost(s)
}

// NormalizeHost is Normalize without the scheme stripping, for bare
// hostnames and IPs.
func NormalizeHost(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.TrimRight(b.String(), "_")
}
