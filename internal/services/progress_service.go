package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"task-planner.com/task-planner/internal/constants"
	dto "task-planner.com/task-planner/internal/data_models"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
	repository "task-planner.com/task-planner/internal/repositories"
)

var csvHeader = []string{
	"Task ID",
	"Task Name",
	"Description",
	"Estimated Duration",
	"Priority",
	"Dependencies",
	"Status",
}

type ProgressService struct {
	plans *repository.PlanRepository
	tasks *repository.TaskRepository
}

func NewProgressService(plans *repository.PlanRepository, tasks *repository.TaskRepository) *ProgressService {
	return &ProgressService{plans: plans, tasks: tasks}
}

func (s *ProgressService) load(ctx context.Context, planID string) (*model.Plan, []model.Task, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.tasks.FindByPlan(ctx, plan.ID)
	if err != nil {
		return nil, nil, err
	}

	return plan, tasks, nil
}

func (s *ProgressService) GetPlanWithTasks(ctx context.Context, planID string) (*dto.PlanDetail, error) {
	plan, tasks, err := s.load(ctx, planID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, dto.TaskView{
			ID:                t.TaskNumber,
			Name:              t.Name,
			Description:       t.Description,
			EstimatedDuration: t.EstimatedDuration,
			Priority:          t.Priority,
			Dependencies:      dependencies(t),
			Status:            statusOf(t),
		})
	}

	counts := tally(tasks)
	return &dto.PlanDetail{
		ID:       plan.ID,
		Goal:     plan.Goal,
		Tasks:    views,
		Progress: Percentage(counts.completed, len(tasks)),
	}, nil
}

func (s *ProgressService) GetProgressStats(ctx context.Context, planID string) (*dto.ProgressStats, error) {
	plan, tasks, err := s.load(ctx, planID)
	if err != nil {
		return nil, err
	}

	counts := tally(tasks)
	return &dto.ProgressStats{
		PlanID:             plan.ID,
		Goal:               plan.Goal,
		TotalTasks:         len(tasks),
		Completed:          counts.completed,
		InProgress:         counts.inProgress,
		Pending:            counts.pending,
		ProgressPercentage: Percentage(counts.completed, len(tasks)),
	}, nil
}

// ExportCSV renders one row per task. A plan without tasks yields
// ErrNoTasks.
func (s *ProgressService) ExportCSV(ctx context.Context, planID string) ([]byte, error) {
	_, tasks, err := s.load(ctx, planID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, apperrors.ErrNoTasks
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		row := []string{
			strconv.Itoa(t.TaskNumber),
			t.Name,
			t.Description,
			model.DisplayString(t.EstimatedDuration.Duration),
			string(t.Priority),
			FormatDependencies(t.Dependencies),
			string(statusOf(t)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return buf.Bytes(), nil
}

// FormatDependencies joins task numbers with ", ", or returns "None".
func FormatDependencies(deps []int) string {
	if len(deps) == 0 {
		return "None"
	}

	parts := make([]string, 0, len(deps))
	for _, d := range deps {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ", ")
}

// Percentage is completed/total as a percentage rounded to two decimals,
// or 0 for an empty plan.
func Percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

type statusCounts struct {
	completed  int
	inProgress int
	pending    int
}

func tally(tasks []model.Task) statusCounts {
	var c statusCounts
	for _, t := range tasks {
		switch statusOf(t) {
		case constants.StatusCompleted:
			c.completed++
		case constants.StatusInProgress:
			c.inProgress++
		default:
			c.pending++
		}
	}
	return c
}

// statusOf treats rows written without a recognised status as pending.
func statusOf(t model.Task) constants.TaskStatus {
	if t.Status.IsValid() {
		return t.Status
	}
	return constants.StatusPending
}

func dependencies(t model.Task) []int {
	if t.Dependencies == nil {
		return []int{}
	}
	return t.Dependencies
}
