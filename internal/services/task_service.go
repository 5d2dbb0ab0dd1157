package services

import (
	"context"

	"task-planner.com/task-planner/internal/constants"
	apperrors "task-planner.com/task-planner/internal/errors"
	repository "task-planner.com/task-planner/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// UpdateTaskStatus sets the status of one task. The status is checked
// before the store is touched.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, planID string, taskNumber int, status string) error {
	next := constants.TaskStatus(status)
	if !next.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if taskNumber <= 0 {
		return apperrors.ErrInvalidTaskNumber
	}
	if err := repository.ValidateID(planID); err != nil {
		return err
	}

	return s.repo.UpdateStatus(ctx, planID, taskNumber, next)
}
