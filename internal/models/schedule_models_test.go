package models

import (
	"testing"
	"time"
)

func TestShiftDurationHours(t *testing.T) {
	shift := Shift{
		StartTime: time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 7, 17, 30, 0, 0, time.UTC),
	}
	if got := shift.DurationHours(); got != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", got)
	}
}
