package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-planner.com/task-planner/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, allowOrigins []string) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/", h.Root)

	api := e.Group("/api")
	api.POST("/plan", h.CreatePlan)
	api.GET("/plans", h.ListPlans)
	api.GET("/plan/:planId", h.GetPlan)
	api.GET("/plan/:planId/progress", h.GetProgress)
	api.GET("/plan/:planId/export/csv", h.ExportCSV)
	api.DELETE("/plan/:planId", h.DeletePlan)
	api.PATCH("/task/:planId/:taskNumber/status", h.UpdateTaskStatus)
}
