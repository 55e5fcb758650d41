package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
	"github.com/DimitriNjila/shiftcraft-api/internal/services"
)

type stubScheduleService struct {
	getSchedulesFn   func(restaurantID *string, startDate, endDate *time.Time) ([]models.Schedule, error)
	getByWeekFn      func(restaurantID string, weekStart time.Time) (*models.Schedule, error)
	createScheduleFn func(restaurantID string, weekStart time.Time) (*models.Schedule, error)
	createRangeFn    func(restaurantID string, startDate, endDate time.Time) (*services.RangeCreationResult, error)
	deleteScheduleFn func(id int64) (*models.Schedule, error)
}

func (s stubScheduleService) GetSchedules(restaurantID *string, startDate, endDate *time.Time) ([]models.Schedule, error) {
	if s.getSchedulesFn == nil {
		return []models.Schedule{}, nil
	}
	return s.getSchedulesFn(restaurantID, startDate, endDate)
}

func (s stubScheduleService) GetScheduleByWeek(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
	if s.getByWeekFn == nil {
		return &models.Schedule{}, nil
	}
	return s.getByWeekFn(restaurantID, weekStart)
}

func (s stubScheduleService) CreateSchedule(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
	if s.createScheduleFn == nil {
		return &models.Schedule{}, nil
	}
	return s.createScheduleFn(restaurantID, weekStart)
}

func (s stubScheduleService) CreateSchedulesForRange(restaurantID string, startDate, endDate time.Time) (*services.RangeCreationResult, error) {
	if s.createRangeFn == nil {
		return &services.RangeCreationResult{}, nil
	}
	return s.createRangeFn(restaurantID, startDate, endDate)
}

func (s stubScheduleService) DeleteSchedule(id int64) (*models.Schedule, error) {
	if s.deleteScheduleFn == nil {
		return &models.Schedule{ID: id}, nil
	}
	return s.deleteScheduleFn(id)
}

func newScheduleTestRouter(service services.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewScheduleHandler(service)

	group := engine.Group("/api/v1/schedules")
	group.GET("", handler.GetSchedules)
	group.GET("/week", handler.GetScheduleByWeek)
	group.POST("", handler.CreateSchedule)
	group.POST("/range", handler.CreateSchedulesForRange)
	group.DELETE("/:id", handler.DeleteSchedule)
	return engine
}

func TestCreateScheduleCreated(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{
		createScheduleFn: func(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
			if restaurantID != testRestaurantID {
				t.Fatalf("unexpected restaurant ID: %s", restaurantID)
			}
			return &models.Schedule{ID: 1, RestaurantID: restaurantID, WeekStart: weekStart}, nil
		},
	})

	body := bytes.NewBufferString(`{"restaurant_id":"` + testRestaurantID + `","week_start":"2025-01-06"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateScheduleConflict(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{
		createScheduleFn: func(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
			return nil, services.ErrScheduleExists
		},
	})

	body := bytes.NewBufferString(`{"restaurant_id":"` + testRestaurantID + `","week_start":"2025-01-06"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}
}

func TestCreateScheduleBadDate(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{})

	body := bytes.NewBufferString(`{"restaurant_id":"` + testRestaurantID + `","week_start":"06/01/2025"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGetScheduleByWeekRequiresWeekStart(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/week?restaurant_id="+testRestaurantID, nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGetScheduleByWeekNotFound(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{
		getByWeekFn: func(restaurantID string, weekStart time.Time) (*models.Schedule, error) {
			return nil, services.ErrScheduleNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/week?restaurant_id="+testRestaurantID+"&week_start=2025-01-06", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestGetSchedulesBadDateFilter(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules?start_date=January", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestCreateSchedulesForRangeSummary(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{
		createRangeFn: func(restaurantID string, startDate, endDate time.Time) (*services.RangeCreationResult, error) {
			return &services.RangeCreationResult{
				Created: []models.Schedule{
					{ID: 1, RestaurantID: restaurantID, WeekStart: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)},
					{ID: 2, RestaurantID: restaurantID, WeekStart: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
				},
				SkippedWeeks: []string{"2025-01-06"},
			}, nil
		},
	})

	body := bytes.NewBufferString(`{"restaurant_id":"` + testRestaurantID + `","start_date":"2025-01-01","end_date":"2025-01-21"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/range", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result services.RangeCreationResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Created) != 2 || len(result.SkippedWeeks) != 1 {
		t.Fatalf("unexpected summary: %+v", result)
	}
}

func TestDeleteScheduleReturnsRecord(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{
		deleteScheduleFn: func(id int64) (*models.Schedule, error) {
			return &models.Schedule{ID: id, RestaurantID: testRestaurantID}, nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/5", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var deleted models.Schedule
	if err := json.Unmarshal(recorder.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if deleted.ID != 5 {
		t.Fatalf("expected deleted schedule ID 5, got %d", deleted.ID)
	}
}

func TestDeleteScheduleNotFoundStatus(t *testing.T) {
	engine := newScheduleTestRouter(stubScheduleService{
		deleteScheduleFn: func(id int64) (*models.Schedule, error) {
			return nil, services.ErrScheduleNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/5", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}
