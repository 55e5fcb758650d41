package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
	"github.com/DimitriNjila/shiftcraft-api/internal/repositories"
)

// --- Custom Service Errors for Schedules ---
var (
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrScheduleExists     = errors.New("schedule already exists for this week")
	ErrScheduleValidation = errors.New("schedule data validation error")
)

// WeekStart returns the Monday of the ISO week containing the given date,
// truncated to midnight UTC. It is pure and idempotent.
func WeekStart(date time.Time) time.Time {
	daysSinceMonday := (int(date.Weekday()) + 6) % 7
	monday := date.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// RangeCreationResult summarizes a bulk schedule creation: the newly created
// schedules plus the week-starts that were skipped because a schedule already
// existed. Skipped weeks are reported, not silently discarded.
type RangeCreationResult struct {
	Created      []models.Schedule `json:"created"`
	SkippedWeeks []string          `json:"skipped_weeks"`
}

// --- ScheduleService Interface ---
// All week lookups take (restaurantID, weekStart) in that order.
type ScheduleService interface {
	GetSchedules(restaurantID *string, startDate, endDate *time.Time) ([]models.Schedule, error)
	GetScheduleByWeek(restaurantID string, weekStart time.Time) (*models.Schedule, error)
	CreateSchedule(restaurantID string, weekStart time.Time) (*models.Schedule, error)
	CreateSchedulesForRange(restaurantID string, startDate, endDate time.Time) (*RangeCreationResult, error)
	DeleteSchedule(scheduleID int64) (*models.Schedule, error)
}

// --- scheduleService Implementation ---
type scheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	db           *sql.DB
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(sr repositories.ScheduleRepository, db *sql.DB) ScheduleService {
	return &scheduleService{
		scheduleRepo: sr,
		db:           db,
	}
}

func validateRestaurantID(restaurantID string) (string, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return "", fmt.Errorf("%w: restaurant_id is required", ErrScheduleValidation)
	}
	if _, err := uuid.Parse(restaurantID); err != nil {
		return "", fmt.Errorf("%w: restaurant_id must be a valid UUID", ErrScheduleValidation)
	}
	return restaurantID, nil
}

func (s *scheduleService) GetSchedules(restaurantID *string, startDate, endDate *time.Time) ([]models.Schedule, error) {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", ErrScheduleValidation)
	}

	filter := repositories.ScheduleFilter{
		RestaurantID: restaurantID,
		StartDate:    startDate,
		EndDate:      endDate,
	}
	schedules, err := s.scheduleRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	return schedules, nil
}

func (s *scheduleService) GetScheduleByWeek(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
	restaurantID, err := validateRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByWeek(restaurantID, WeekStart(weekStart))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule by week: %w", err)
	}
	return schedule, nil
}

// CreateSchedule inserts a schedule for the week containing weekStart. The
// store's unique index on (restaurant_id, week_start) is the uniqueness check;
// a conflicting insert surfaces as ErrScheduleExists without a prior read.
func (s *scheduleService) CreateSchedule(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
	restaurantID, err := validateRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		RestaurantID: restaurantID,
		WeekStart:    WeekStart(weekStart),
	}

	created, err := s.scheduleRepo.Create(s.db, schedule)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: week starting %s", ErrScheduleExists,
				schedule.WeekStart.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to create schedule in repository: %w", err)
	}
	return created, nil
}

// CreateSchedulesForRange creates a schedule for every week from the week
// containing startDate through the week containing endDate, inclusive. Weeks
// that already have a schedule are skipped and reported in the result. A store
// failure mid-range stops the iteration; schedules created so far stay
// committed.
func (s *scheduleService) CreateSchedulesForRange(restaurantID string, startDate, endDate time.Time) (*RangeCreationResult, error) {
	restaurantID, err := validateRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	result := &RangeCreationResult{
		Created:      []models.Schedule{},
		SkippedWeeks: []string{},
	}

	endWeek := WeekStart(endDate)
	for week := WeekStart(startDate); !week.After(endWeek); week = week.AddDate(0, 0, 7) {
		schedule, err := s.scheduleRepo.Create(s.db, &models.Schedule{
			RestaurantID: restaurantID,
			WeekStart:    week,
		})
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				result.SkippedWeeks = append(result.SkippedWeeks, week.Format("2006-01-02"))
				continue
			}
			return nil, fmt.Errorf("failed to create schedule for week %s: %w",
				week.Format("2006-01-02"), err)
		}
		result.Created = append(result.Created, *schedule)
	}
	return result, nil
}

func (s *scheduleService) DeleteSchedule(scheduleID int64) (*models.Schedule, error) {
	deleted, err := s.scheduleRepo.Delete(s.db, scheduleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to delete schedule: %w", err)
	}
	return deleted, nil
}
