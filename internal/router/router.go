package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/DimitriNjila/shiftcraft-api/internal/handlers"
	"github.com/DimitriNjila/shiftcraft-api/internal/repositories"
	"github.com/DimitriNjila/shiftcraft-api/internal/services"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)

	// Initialize Services
	employeeService := services.NewEmployeeService(employeeRepo, db)
	scheduleService := services.NewScheduleService(scheduleRepo, db)

	// Initialize Handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	apiV1 := engine.Group("/api/v1")

	SetupEmployeeRoutes(apiV1, employeeHandler)
	SetupScheduleRoutes(apiV1, scheduleHandler)
}
