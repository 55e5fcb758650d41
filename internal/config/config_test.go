package config

import (
	"testing"
	"time"

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RestaurantID.String() != defaultRestaurantID {
		t.Fatalf("unexpected default restaurant ID: %s", cfg.RestaurantID)
	}
	if len(cfg.OperatingDays) != 6 || cfg.OperatingDays[0] != models.Tuesday {
		t.Fatalf("unexpected default operating days: %v", cfg.OperatingDays)
	}
	if cfg.MinShiftDuration != 4*time.Hour {
		t.Fatalf("expected 4h minimum shift, got %s", cfg.MinShiftDuration)
	}
	if cfg.MaxShiftDuration != 10*time.Hour {
		t.Fatalf("expected 10h maximum shift, got %s", cfg.MaxShiftDuration)
	}
	if cfg.ScheduleWeeksAhead != 4 || cfg.ScheduleWeeksBehind != 2 {
		t.Fatalf("unexpected schedule window: ahead=%d behind=%d", cfg.ScheduleWeeksAhead, cfg.ScheduleWeeksBehind)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPERATING_DAYS", "5, 6, 7")
	t.Setenv("MIN_SHIFT_DURATION_MINUTES", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.OperatingDays) != 3 || cfg.OperatingDays[2] != models.Sunday {
		t.Fatalf("unexpected operating days: %v", cfg.OperatingDays)
	}
	if cfg.MinShiftDuration != 2*time.Hour {
		t.Fatalf("expected 2h minimum shift, got %s", cfg.MinShiftDuration)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("RESTAURANT_ID", "bellagios")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed RESTAURANT_ID")
	}
}

func TestLoadRejectsBadOperatingDay(t *testing.T) {
	t.Setenv("OPERATING_DAYS", "1,8")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range weekday")
	}
}
