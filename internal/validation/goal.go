package validation

import (
	"strings"
)

// ValidateGoal checks the goal registry form: title and category required,
// daily target at least one minute, priority 1 (highest) to 5 (lowest).
func ValidateGoal(title, category string, dailyTargetMinutes, priority int) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(category) == "" {
		errs["category"] = "Category is required"
	}
	if dailyTargetMinutes < 1 {
		errs["daily_target_minutes"] = "Must be at least 1 minute"
	}
	if priority < 1 || priority > 5 {
		errs["priority"] = "Priority must be between 1 and 5"
	}

	return errs
}
