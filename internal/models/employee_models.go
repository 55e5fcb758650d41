package models

import "time"

// Employee represents a member of restaurant staff who can be assigned shifts.
type Employee struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Role         string     `json:"role" db:"role"` // See EmployeeRole constants
	RestaurantID string     `json:"restaurant_id" db:"restaurant_id"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	Email        *string    `json:"email,omitempty" db:"email"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" db:"deleted_at"` // Soft-delete marker
}
