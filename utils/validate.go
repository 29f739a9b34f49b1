package utils

import (
	"regexp"
	"unicode/utf8"
)

// Exactly one @, non-empty local part, domain containing a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const minPasswordLen = 6

// ValidatePassword returns whether the password is acceptable and, if not,
// the reason to return to the caller.
func ValidatePassword(password string) (bool, string) {
	// Counted in characters, not bytes.
	if utf8.RuneCountInString(password) < minPasswordLen {
		return false, "password must be at least 6 characters long"
	}
	return true, ""
}
