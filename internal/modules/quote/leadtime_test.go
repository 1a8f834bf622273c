package quote

import (
	"errors"
	"testing"
	"time"
)

func TestValidateLeadTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	min := 4 * time.Hour

	tests := []struct {
		name      string
		scheduled time.Time
		wantErr   bool
	}{
		{"three hours ahead", time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC), true},
		{"exactly minimum", time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), false},
		{"well ahead same day", time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), false},
		// Next day, one hour past midnight by clock time: a date-discarding
		// comparison would wrongly reject this.
		{"next day early clock time", time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC), false},
		{"in the past", time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeadTime(tt.scheduled, now, min)
			if tt.wantErr && !errors.Is(err, ErrLeadTimeTooShort) {
				t.Errorf("ValidateLeadTime() = %v, want ErrLeadTimeTooShort", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateLeadTime() = %v, want nil", err)
			}
		})
	}
}

func TestTripSpec_ScheduledAt(t *testing.T) {
	spec := TripSpec{Date: "2024-01-02", Time: "11:30"}
	got, err := spec.ScheduledAt(time.UTC)
	if err != nil {
		t.Fatalf("ScheduledAt() error: %v", err)
	}
	want := time.Date(2024, 1, 2, 11, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ScheduledAt() = %v, want %v", got, want)
	}
}

func TestTripSpec_ScheduledAt_BadInput(t *testing.T) {
	for _, spec := range []TripSpec{
		{Date: "02-01-2024", Time: "11:30"},
		{Date: "2024-01-02", Time: "11:30pm"},
		{Date: "", Time: ""},
	} {
		if _, err := spec.ScheduledAt(time.UTC); err == nil {
			t.Errorf("ScheduledAt(%q %q) succeeded, want error", spec.Date, spec.Time)
		}
	}
}
