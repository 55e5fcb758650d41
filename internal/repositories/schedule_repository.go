package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq" // For pq.Error

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
)

// ScheduleFilter narrows schedule listings. Nil fields are not applied; the
// date bounds are inclusive and compare against week_start.
type ScheduleFilter struct {
	RestaurantID *string
	StartDate    *time.Time
	EndDate      *time.Time
}

// ScheduleRepository defines the interface for schedule database operations.
// Uniqueness of (restaurant_id, week_start) is enforced by the store's unique
// index, not by a read-before-write check.
type ScheduleRepository interface {
	Create(executor SQLExecutor, schedule *models.Schedule) (*models.Schedule, error)
	GetByID(id int64) (*models.Schedule, error)
	GetByWeek(restaurantID string, weekStart time.Time) (*models.Schedule, error)
	List(filter ScheduleFilter) ([]models.Schedule, error)
	Delete(executor SQLExecutor, id int64) (*models.Schedule, error)
}

type scheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new instance of ScheduleRepository.
func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, restaurant_id, week_start, created_at`

func scanScheduleRow(row scanner) (*models.Schedule, error) {
	var schedule models.Schedule
	err := row.Scan(&schedule.ID, &schedule.RestaurantID, &schedule.WeekStart, &schedule.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning schedule: %v", ErrDatabaseError, err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) Create(executor SQLExecutor, schedule *models.Schedule) (*models.Schedule, error) {
	query := `INSERT INTO schedules (restaurant_id, week_start, created_at)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`

	schedule.CreatedAt = time.Now()

	err := executor.QueryRow(query,
		schedule.RestaurantID, schedule.WeekStart, schedule.CreatedAt,
	).Scan(&schedule.ID, &schedule.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: schedule for restaurant %s week %s already exists",
				ErrDuplicateKey, schedule.RestaurantID, schedule.WeekStart.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("%w: creating schedule: %v", ErrDatabaseError, err)
	}
	return schedule, nil
}

func (r *scheduleRepository) GetByID(id int64) (*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`
	return scanScheduleRow(r.db.QueryRow(query, id))
}

func (r *scheduleRepository) GetByWeek(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules
	          WHERE restaurant_id = $1 AND week_start = $2`
	return scanScheduleRow(r.db.QueryRow(query, restaurantID, weekStart))
}

func (r *scheduleRepository) List(filter ScheduleFilter) ([]models.Schedule, error) {
	schedules := []models.Schedule{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + scheduleColumns + ` FROM schedules`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.RestaurantID != nil {
		conditions = append(conditions, fmt.Sprintf("restaurant_id = $%d", argCount))
		args = append(args, *filter.RestaurantID)
		argCount++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("week_start >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("week_start <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY week_start DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying schedules: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		schedule, err := scanScheduleRow(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *schedule)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating schedule rows: %v", ErrDatabaseError, err)
	}
	return schedules, nil
}

// Delete removes the schedule and returns the deleted record in one round trip.
func (r *scheduleRepository) Delete(executor SQLExecutor, id int64) (*models.Schedule, error) {
	query := `DELETE FROM schedules WHERE id = $1 RETURNING ` + scheduleColumns
	return scanScheduleRow(executor.QueryRow(query, id))
}
