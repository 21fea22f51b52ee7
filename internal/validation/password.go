package validation

import (
	"errors"
)

// ValidatePassword validates password length bounds.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}

	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	// Maximum length: 72 bytes (bcrypt truncates silently beyond that)
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	return nil
}
