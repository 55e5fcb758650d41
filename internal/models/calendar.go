package models

import "time"

// DayOfWeek follows ISO 8601 weekday numbering (Monday=1, Sunday=7).
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = map[DayOfWeek]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DayOfWeekFromDate returns the ISO weekday for a date.
func DayOfWeekFromDate(t time.Time) DayOfWeek {
	wd := int(t.Weekday())
	if wd == 0 { // time.Sunday is 0, ISO Sunday is 7
		wd = 7
	}
	return DayOfWeek(wd)
}

// DisplayName returns the human-readable name of the day.
func (d DayOfWeek) DisplayName() string {
	return dayNames[d]
}

// EmployeeRole enumerates the valid staff roles.
type EmployeeRole string

const (
	RoleServer  EmployeeRole = "Server"
	RoleCook    EmployeeRole = "Cook"
	RoleManager EmployeeRole = "Manager"
)

// Valid reports whether the role is one of the known staff roles.
func (r EmployeeRole) Valid() bool {
	switch r {
	case RoleServer, RoleCook, RoleManager:
		return true
	}
	return false
}

// ShiftType categorizes shifts within an operating day.
type ShiftType string

const (
	ShiftOpening ShiftType = "Opening"
	ShiftClosing ShiftType = "Closing"
	ShiftDouble  ShiftType = "Double"
)

// OperatingHours holds the opening and closing times for one day, in "15:04" format.
type OperatingHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// weeklyOperatingHours is the static operating-hours table. Days absent from
// the table are closed (the restaurant does not open on Mondays).
var weeklyOperatingHours = map[DayOfWeek]OperatingHours{
	Tuesday:   {Open: "11:00", Close: "20:00"},
	Wednesday: {Open: "11:00", Close: "20:00"},
	Thursday:  {Open: "11:00", Close: "21:00"},
	Friday:    {Open: "11:00", Close: "21:00"},
	Saturday:  {Open: "11:00", Close: "20:00"},
	Sunday:    {Open: "12:00", Close: "18:00"},
}

// IsRestaurantOpen reports whether the restaurant operates on the given day.
func IsRestaurantOpen(day DayOfWeek) bool {
	_, ok := weeklyOperatingHours[day]
	return ok
}

// OperatingHoursFor returns the opening and closing times for a day.
// The second return value is false when the restaurant is closed that day.
func OperatingHoursFor(day DayOfWeek) (OperatingHours, bool) {
	hours, ok := weeklyOperatingHours[day]
	return hours, ok
}
