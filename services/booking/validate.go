package booking

import "time"

const dateLayout = "2006-01-02"

// ValidateDates checks a booking's date range. Check-in strictly after
// check-out is rejected; equal dates are permitted. Returns a
// ValidationError on failure.
func ValidateDates(checkIn, checkOut string) error {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return NewValidationError("check_in", "must be a date in YYYY-MM-DD format")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return NewValidationError("check_out", "must be a date in YYYY-MM-DD format")
	}
	if in.After(out) {
		return NewValidationError("check_out", "check-out must be after check-in")
	}
	return nil
}
