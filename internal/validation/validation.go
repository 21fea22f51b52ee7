package validation

// FieldErrors maps a form field to its message. Checks surface before any
// backend work happens; an empty map means the input passed.
type FieldErrors map[string]string

func (f FieldErrors) Ok() bool {
	return len(f) == 0
}
