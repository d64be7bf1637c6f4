package routes

import (
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/api/handler"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	calendarHandler *handler.CalendarHandler,
	durationHandler *handler.DurationHandler,
) {
	calendarRoutes := router.Group("/calendar")
	{
		calendarRoutes.POST("", calendarHandler.CreateCalendar)
		calendarRoutes.GET("", calendarHandler.ListCalendars)
		calendarRoutes.GET("/:name", calendarHandler.GetCalendar)
		calendarRoutes.DELETE("/:name", calendarHandler.DeleteCalendar)

		calendarRoutes.PUT("/:name/day", calendarHandler.PutBusinessDay)
		calendarRoutes.DELETE("/:name/day/:weekday", calendarHandler.RemoveBusinessDay)

		calendarRoutes.PUT("/:name/holiday", calendarHandler.PutHoliday)
		calendarRoutes.DELETE("/:name/holiday", calendarHandler.RemoveHoliday)

		calendarRoutes.GET("/:name/duration", durationHandler.Duration)
		calendarRoutes.GET("/:name/working-time", durationHandler.IsWorkingTime)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
