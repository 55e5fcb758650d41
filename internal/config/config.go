package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
	"github.com/DimitriNjila/shiftcraft-api/pkg/utils"
)

// defaultRestaurantID is the single-restaurant MVP identifier used when
// RESTAURANT_ID is not set.
const defaultRestaurantID = "550e8400-e29b-41d4-a716-446655440000"

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Config is the process-wide settings object, loaded once at start and
// read-only afterwards.
type Config struct {
	Port               string
	CORSAllowedOrigins []string

	// Restaurant configuration (MVP: single restaurant)
	RestaurantID uuid.UUID

	// Operating hours
	OperatingDays []models.DayOfWeek
	OpeningTime   string // "15:04"
	ClosingTime   string // "15:04"

	// Shift configuration
	MinShiftDuration      time.Duration
	MaxShiftDuration      time.Duration
	MinBreakBetweenShifts time.Duration

	// Schedule window
	ScheduleWeeksAhead  int
	ScheduleWeeksBehind int

	DB DBConfig
}

// Load reads the configuration from the environment, applying defaults for
// everything except malformed values, which are startup errors.
func Load() (*Config, error) {
	restaurantID, err := uuid.Parse(utils.Getenv("RESTAURANT_ID", defaultRestaurantID))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_ID: %w", err)
	}

	operatingDays, err := parseOperatingDays(utils.Getenv("OPERATING_DAYS", "2,3,4,5,6,7"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPERATING_DAYS: %w", err)
	}

	minShift, err := minutesEnv("MIN_SHIFT_DURATION_MINUTES", 240)
	if err != nil {
		return nil, err
	}
	maxShift, err := minutesEnv("MAX_SHIFT_DURATION_MINUTES", 600)
	if err != nil {
		return nil, err
	}
	minBreak, err := minutesEnv("MIN_BREAK_BETWEEN_SHIFTS_MINUTES", 0)
	if err != nil {
		return nil, err
	}

	weeksAhead, err := intEnv("SCHEDULE_WEEKS_AHEAD", 4)
	if err != nil {
		return nil, err
	}
	weeksBehind, err := intEnv("SCHEDULE_WEEKS_BEHIND", 2)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               utils.Getenv("PORT", "8080"),
		CORSAllowedOrigins: splitNonEmpty(utils.Getenv("CORS_ALLOWED_ORIGINS", "")),

		RestaurantID: restaurantID,

		OperatingDays: operatingDays,
		OpeningTime:   utils.Getenv("OPENING_TIME", "11:00"),
		ClosingTime:   utils.Getenv("CLOSING_TIME", "21:00"),

		MinShiftDuration:      minShift,
		MaxShiftDuration:      maxShift,
		MinBreakBetweenShifts: minBreak,

		ScheduleWeeksAhead:  weeksAhead,
		ScheduleWeeksBehind: weeksBehind,

		DB: DBConfig{
			Host:     utils.Getenv("DB_HOST", "localhost"),
			Port:     utils.Getenv("DB_PORT", "5432"),
			User:     utils.Getenv("DB_USER", "shiftcraft_user"),
			Password: utils.Getenv("DB_PASSWORD", "shiftcraft_password"),
			Name:     utils.Getenv("DB_NAME", "shiftcraft_db"),
			SSLMode:  utils.Getenv("DB_SSLMODE", "disable"),
		},
	}, nil
}

func parseOperatingDays(raw string) ([]models.DayOfWeek, error) {
	parts := splitNonEmpty(raw)
	days := make([]models.DayOfWeek, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < int(models.Monday) || n > int(models.Sunday) {
			return nil, fmt.Errorf("%q is not an ISO weekday (1-7)", part)
		}
		days = append(days, models.DayOfWeek(n))
	}
	return days, nil
}

func splitNonEmpty(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intEnv(key string, fallback int) (int, error) {
	raw := utils.Getenv(key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func minutesEnv(key string, fallbackMinutes int) (time.Duration, error) {
	n, err := intEnv(key, fallbackMinutes)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Minute, nil
}
