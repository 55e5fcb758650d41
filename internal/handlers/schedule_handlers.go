package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DimitriNjila/shiftcraft-api/internal/services"
	"github.com/DimitriNjila/shiftcraft-api/pkg/utils"
)

// dateLayout is the wire format for all schedule dates.
const dateLayout = "2006-01-02"

// ScheduleHandler holds the schedule service.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// --- Request DTOs ---

type CreateScheduleRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	WeekStart    string `json:"week_start" binding:"required"` // YYYY-MM-DD, any day of the target week
}

type CreateScheduleRangeRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate      string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

func parseDateParam(c *gin.Context, name, value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+", expected YYYY-MM-DD.", err.Error()))
		return time.Time{}, false
	}
	return parsed, true
}

// GetSchedules handles fetching schedules with optional restaurant and
// date-range filters, newest week first.
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	var restaurantID *string
	if v := c.Query("restaurant_id"); v != "" {
		restaurantID = &v
	}

	var startDate, endDate *time.Time
	if v := c.Query("start_date"); v != "" {
		parsed, ok := parseDateParam(c, "start_date", v)
		if !ok {
			return
		}
		startDate = &parsed
	}
	if v := c.Query("end_date"); v != "" {
		parsed, ok := parseDateParam(c, "end_date", v)
		if !ok {
			return
		}
		endDate = &parsed
	}

	schedules, err := h.scheduleService.GetSchedules(restaurantID, startDate, endDate)
	if err != nil {
		utils.LogError(err, "GetSchedules: Error from scheduleService.GetSchedules")
		if errors.Is(err, services.ErrScheduleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch schedules.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetScheduleByWeek handles fetching the schedule covering a given date for a
// restaurant. The date is normalized to its Monday before lookup.
func (h *ScheduleHandler) GetScheduleByWeek(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	weekStartStr := c.Query("week_start")
	if weekStartStr == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "week_start query parameter is required.", ""))
		return
	}
	weekStart, ok := parseDateParam(c, "week_start", weekStartStr)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetScheduleByWeek(restaurantID, weekStart)
	if err != nil {
		utils.LogError(err, "GetScheduleByWeek: Error from scheduleService.GetScheduleByWeek")
		if errors.Is(err, services.ErrScheduleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Schedule not found for that week.", err.Error()))
		} else if errors.Is(err, services.ErrScheduleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch schedule.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// CreateSchedule handles the creation of a schedule for one week.
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSchedule: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	weekStart, ok := parseDateParam(c, "week_start", req.WeekStart)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(req.RestaurantID, weekStart)
	if err != nil {
		utils.LogError(err, "CreateSchedule: Error from scheduleService.CreateSchedule")
		if errors.Is(err, services.ErrScheduleExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A schedule already exists for that week.", err.Error()))
		} else if errors.Is(err, services.ErrScheduleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create schedule.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// CreateSchedulesForRange handles bulk creation of schedules for every week in
// a date range, reporting created and skipped weeks.
func (h *ScheduleHandler) CreateSchedulesForRange(c *gin.Context) {
	var req CreateScheduleRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSchedulesForRange: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	startDate, ok := parseDateParam(c, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date", req.EndDate)
	if !ok {
		return
	}

	result, err := h.scheduleService.CreateSchedulesForRange(req.RestaurantID, startDate, endDate)
	if err != nil {
		utils.LogError(err, "CreateSchedulesForRange: Error from scheduleService.CreateSchedulesForRange")
		if errors.Is(err, services.ErrScheduleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create schedules for range.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteSchedule handles deleting a schedule and returns the deleted record.
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	idStr := c.Param("id")
	scheduleID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid schedule ID format.", err.Error()))
		return
	}

	deleted, err := h.scheduleService.DeleteSchedule(scheduleID)
	if err != nil {
		utils.LogError(err, "DeleteSchedule: Error from scheduleService.DeleteSchedule for ID "+idStr)
		if errors.Is(err, services.ErrScheduleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Schedule not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete schedule.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, deleted)
}
