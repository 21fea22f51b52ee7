package validation

import (
	"strings"

	"github.com/goaltime/goaltime/internal/model"
)

// ValidateJournal checks the daily journal form: mood from the enum and a
// non-empty reflection.
func ValidateJournal(mood, reflection string) FieldErrors {
	errs := FieldErrors{}

	if mood == "" {
		errs["mood"] = "Please select your mood"
	} else if !model.ValidMood(mood) {
		errs["mood"] = "Unknown mood"
	}

	if strings.TrimSpace(reflection) == "" {
		errs["reflection"] = "Please write your reflection"
	}

	return errs
}
