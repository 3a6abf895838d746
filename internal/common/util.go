package common

import "regexp"

// emailPattern mirrors the simple syntactic check applied on the
// registration form: non-empty local part, "@", non-empty domain with a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s is a syntactically plausible email address.
// It is a cheap format check, not a deliverability guarantee.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Useful for removing password input from memory after it has been consumed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
