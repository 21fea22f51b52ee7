package validation

// ValidateManualDuration checks the manual-entry fields: hours 0 or
// greater, minutes 0 through 59, and a non-zero total.
func ValidateManualDuration(hours, minutes int) FieldErrors {
	errs := FieldErrors{}

	if hours < 0 {
		errs["hours"] = "Hours must be 0 or greater"
	}
	if minutes < 0 {
		errs["minutes"] = "Minutes must be 0 or greater"
	} else if minutes > 59 {
		errs["minutes"] = "Minutes must be less than 60"
	}

	if errs.Ok() && hours*60+minutes <= 0 {
		errs["duration"] = "Please enter a valid time"
	}

	return errs
}

// ValidateTimeEntry checks the shared time-entry fields.
func ValidateTimeEntry(goalID string) FieldErrors {
	errs := FieldErrors{}

	if goalID == "" {
		errs["goal_id"] = "Please select a goal"
	}

	return errs
}
