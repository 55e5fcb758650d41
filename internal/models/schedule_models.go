package models

import "time"

// Schedule represents one restaurant's weekly schedule. WeekStart is always the
// Monday of the covered week; the service normalizes arbitrary dates before any
// read or write, and the store enforces one schedule per (restaurant, week).
type Schedule struct {
	ID           int64     `json:"id" db:"id"`
	RestaurantID string    `json:"restaurant_id" db:"restaurant_id"`
	WeekStart    time.Time `json:"week_start" db:"week_start"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Shift represents a single work assignment within a schedule. A schedule owns
// its shifts; an employee is referenced by, not owned by, a shift.
type Shift struct {
	ID         int64     `json:"id" db:"id"`
	ScheduleID int64     `json:"schedule_id" db:"schedule_id"`
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	ShiftDate  time.Time `json:"shift_date" db:"shift_date"`
	StartTime  time.Time `json:"start_time" db:"start_time"`
	EndTime    time.Time `json:"end_time" db:"end_time"`
	Employee   *Employee `json:"employee,omitempty"` // For joining with Employee details
}

// DurationHours returns the shift length in hours.
func (s Shift) DurationHours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}
