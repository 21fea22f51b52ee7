package validation

import (
	"strings"
)

// ValidateDailyGoal checks the checklist form: title required, priority
// 1 (high) to 3 (low).
func ValidateDailyGoal(title string, priority int) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(title) == "" {
		errs["title"] = "Please enter a goal"
	}
	if priority < 1 || priority > 3 {
		errs["priority"] = "Please select priority"
	}

	return errs
}
