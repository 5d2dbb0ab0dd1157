package dto

import (
	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

type CreatePlanResponse struct {
	Success bool          `json:"success"`
	PlanID  string        `json:"plan_id"`
	Message string        `json:"message"`
	Plan    GeneratedPlan `json:"plan"`
}

type GeneratedPlan struct {
	Tasks []model.TaskSpec `json:"tasks"`
}

type PlanListResponse struct {
	Plans []model.PlanSummary `json:"plans"`
}

type TaskView struct {
	ID                int                  `json:"id"`
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	EstimatedDuration model.Estimate       `json:"estimated_duration"`
	Priority          constants.Priority   `json:"priority"`
	Dependencies      []int                `json:"dependencies"`
	Status            constants.TaskStatus `json:"status"`
}

type PlanDetail struct {
	ID       string     `json:"id"`
	Goal     string     `json:"goal"`
	Tasks    []TaskView `json:"tasks"`
	Progress float64    `json:"progress"`
}

type ProgressStats struct {
	PlanID             string  `json:"plan_id"`
	Goal               string  `json:"goal"`
	TotalTasks         int     `json:"total_tasks"`
	Completed          int     `json:"completed"`
	InProgress         int     `json:"in_progress"`
	Pending            int     `json:"pending"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
