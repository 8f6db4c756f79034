package listing

import "fmt"

// ValidationError is a user-correctable input failure on a review.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateReview checks the review bounds: rating 1-5, comment at most
// 500 characters.
func ValidateReview(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	if len(comment) > 500 {
		return &ValidationError{Field: "comment", Message: "must be at most 500 characters"}
	}
	return nil
}
