package router

import (
	"github.com/gin-gonic/gin"

	"github.com/DimitriNjila/shiftcraft-api/internal/handlers"
)

// SetupEmployeeRoutes sets up the employee routes.
func SetupEmployeeRoutes(apiGroup *gin.RouterGroup, employeeHandler *handlers.EmployeeHandler) {
	employeeRoutes := apiGroup.Group("/employees")
	{
		employeeRoutes.GET("", employeeHandler.GetEmployees)
		employeeRoutes.GET("/:id", employeeHandler.GetEmployeeByID)
		employeeRoutes.POST("", employeeHandler.CreateEmployee)
		employeeRoutes.PUT("/:id", employeeHandler.UpdateEmployee)
		employeeRoutes.DELETE("/:id", employeeHandler.DeactivateEmployee)
		employeeRoutes.DELETE("/:id/permanent", employeeHandler.DeleteEmployeePermanently)
	}
}

// SetupScheduleRoutes sets up the schedule routes.
func SetupScheduleRoutes(apiGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	scheduleRoutes := apiGroup.Group("/schedules")
	{
		scheduleRoutes.GET("", scheduleHandler.GetSchedules)
		scheduleRoutes.GET("/week", scheduleHandler.GetScheduleByWeek)
		scheduleRoutes.POST("", scheduleHandler.CreateSchedule)
		scheduleRoutes.POST("/range", scheduleHandler.CreateSchedulesForRange)
		scheduleRoutes.DELETE("/:id", scheduleHandler.DeleteSchedule)
	}
}
