package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-planner.com/task-planner/internal/constants"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// BulkCreate stores one task per spec under planID. Status always starts
// as pending.
func (r *TaskRepository) BulkCreate(ctx context.Context, planID string, specs []model.TaskSpec) ([]model.Task, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	tasks := make([]model.Task, 0, len(specs))
	for _, spec := range specs {
		deps := spec.Dependencies
		if deps == nil {
			deps = []int{}
		}

		tasks = append(tasks, model.Task{
			ID:                uuid.NewString(),
			PlanID:            planID,
			TaskNumber:        spec.ID,
			Name:              spec.Name,
			Description:       spec.Description,
			EstimatedDuration: spec.EstimatedDuration,
			Priority:          spec.Priority,
			Dependencies:      deps,
			Status:            constants.StatusPending,
		})
	}

	if err := r.db.WithContext(ctx).Create(&tasks).Error; err != nil {
		return nil, fmt.Errorf("create tasks for plan %s: %w", planID, err)
	}

	return tasks, nil
}

func (r *TaskRepository) FindByPlan(ctx context.Context, planID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("task_number asc").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("find tasks for plan %s: %w", planID, err)
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, planID string, taskNumber int, status constants.TaskStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("plan_id = ? AND task_number = ?", planID, taskNumber).
		Update("status", status)

	if res.Error != nil {
		return fmt.Errorf("update task %d of plan %s: %w", taskNumber, planID, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) DeleteByPlan(ctx context.Context, planID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("plan_id = ?", planID).Delete(&model.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete tasks for plan %s: %w", planID, res.Error)
	}

	return res.RowsAffected, nil
}

func (r *TaskRepository) CountByPlan(ctx context.Context, planID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("plan_id = ?", planID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count tasks for plan %s: %w", planID, err)
	}

	return count, nil
}

func (r *TaskRepository) CountByPlanAndStatus(ctx context.Context, planID string, status constants.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("plan_id = ? AND status = ?", planID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s tasks for plan %s: %w", status, planID, err)
	}

	return count, nil
}
