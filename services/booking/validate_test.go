package booking

import (
	"errors"
	"testing"
)

func TestValidateDates(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{"valid range", "2024-12-01", "2024-12-05", false},
		{"equal dates permitted", "2024-12-01", "2024-12-01", false},
		{"check-in after check-out", "2024-12-05", "2024-12-01", true},
		{"malformed check-in", "01-12-2024", "2024-12-05", true},
		{"malformed check-out", "2024-12-01", "tomorrow", true},
		{"empty dates", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDates(tc.checkIn, tc.checkOut)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %s/%s, got nil", tc.checkIn, tc.checkOut)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error for %s/%s, got %v", tc.checkIn, tc.checkOut, err)
			}
			if tc.wantErr {
				var verr *ValidationError
				if err != nil && !errors.As(err, &verr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}
