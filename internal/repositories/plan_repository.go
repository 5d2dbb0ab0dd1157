package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, goal string) (*model.Plan, error) {
	plan := &model.Plan{
		ID:        uuid.NewString(),
		Goal:      goal,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	return plan, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*model.Plan, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	var plan model.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan %s: %w", id, err)
	}

	return &plan, nil
}

func (r *PlanRepository) ListWithTaskCounts(ctx context.Context) ([]model.PlanSummary, error) {
	var summaries []model.PlanSummary
	err := r.db.WithContext(ctx).
		Model(&model.Plan{}).
		Select("plans.id, plans.goal, COUNT(tasks.id) AS task_count").
		Joins("LEFT JOIN tasks ON tasks.plan_id = plans.id").
		Group("plans.id, plans.goal, plans.created_at").
		Order("plans.created_at asc").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return summaries, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Plan{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete plan %s: %w", id, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// ValidateID reports ErrMalformedPlanID for ids that cannot have been
// issued by Create.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrMalformedPlanID
	}
	return nil
}
