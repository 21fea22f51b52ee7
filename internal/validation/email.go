package validation

import (
	"errors"
	"regexp"
)

// emailPattern matches local@domain.tld, case-insensitive.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// ValidateEmail validates email format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	// RFC 5321: total address max 254 characters
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}

	return nil
}
