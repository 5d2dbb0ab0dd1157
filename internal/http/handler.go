package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-planner.com/task-planner/internal/data_models"
	apperrors "task-planner.com/task-planner/internal/errors"
	"task-planner.com/task-planner/internal/http/validators"
	model "task-planner.com/task-planner/internal/models"
	"task-planner.com/task-planner/internal/services"
)

type Handler struct {
	planService     *services.PlanService
	taskService     *services.TaskService
	progressService *services.ProgressService
}

func NewHandler(
	planService *services.PlanService,
	taskService *services.TaskService,
	progressService *services.ProgressService,
) *Handler {
	return &Handler{
		planService:     planService,
		taskService:     taskService,
		progressService: progressService,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Smart Task Planner API"})
}

func (h *Handler) CreatePlan(c echo.Context) error {
	var req dto.CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if req.Goal == "" {
		req.Goal = c.QueryParam("goal")
	}
	if err := validators.ValidateCreatePlanRequest(&req); err != nil {
		return err
	}

	plan, specs, err := h.planService.CreatePlan(c.Request().Context(), req.Goal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.CreatePlanResponse{
		Success: true,
		PlanID:  plan.ID,
		Message: "Plan created",
		Plan:    dto.GeneratedPlan{Tasks: specs},
	})
}

func (h *Handler) ListPlans(c echo.Context) error {
	plans, err := h.planService.ListPlans(c.Request().Context())
	if err != nil {
		return err
	}
	if plans == nil {
		plans = []model.PlanSummary{}
	}

	return c.JSON(http.StatusOK, dto.PlanListResponse{Plans: plans})
}

func (h *Handler) GetPlan(c echo.Context) error {
	detail, err := h.progressService.GetPlanWithTasks(c.Request().Context(), c.Param("planId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	taskNumber, err := validators.ParseTaskNumber(c.Param("taskNumber"))
	if err != nil {
		return err
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if req.Status == "" {
		req.Status = c.QueryParam("status")
	}

	if err := h.taskService.UpdateTaskStatus(c.Request().Context(), c.Param("planId"), taskNumber, req.Status); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("Task status updated to '%s'", req.Status),
	})
}

func (h *Handler) GetProgress(c echo.Context) error {
	stats, err := h.progressService.GetProgressStats(c.Request().Context(), c.Param("planId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) DeletePlan(c echo.Context) error {
	if err := h.planService.DeletePlan(c.Request().Context(), c.Param("planId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Plan deleted"})
}

func (h *Handler) ExportCSV(c echo.Context) error {
	planID := c.Param("planId")

	data, err := h.progressService.ExportCSV(c.Request().Context(), planID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=task_plan_%s.csv", planID))
	return c.Blob(http.StatusOK, "text/csv", data)
}
