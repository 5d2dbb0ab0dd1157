package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
	"task-planner.com/task-planner/internal/queue"
	repository "task-planner.com/task-planner/internal/repositories"
)

// Decomposer breaks a goal into task specs.
type Decomposer interface {
	Decompose(ctx context.Context, goal string) ([]model.TaskSpec, error)
}

type PlanService struct {
	store        *repository.Store
	decomposer   Decomposer
	tokenManager queue.TokenManager
}

func NewPlanService(
	store *repository.Store,
	decomposer Decomposer,
	tokenManager queue.TokenManager,
) *PlanService {
	return &PlanService{
		store:        store,
		decomposer:   decomposer,
		tokenManager: tokenManager,
	}
}

// CreatePlan generates tasks for goal and persists the plan with its tasks.
// Nothing is stored unless the model output was fully valid.
func (s *PlanService) CreatePlan(ctx context.Context, goal string) (*model.Plan, []model.TaskSpec, error) {
	// Generation keeps going if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	if err := s.acquireGenerationSlot(ctx); err != nil {
		return nil, nil, err
	}
	defer s.releaseGenerationSlot(ctx)

	specs, err := s.decomposer.Decompose(ctx, goal)
	if err != nil {
		log.Printf("plan generation failed for goal %q: %v", goal, err)
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrGenerationFailed, err)
	}

	var plan *model.Plan
	err = s.store.Transaction(ctx, func(plans *repository.PlanRepository, tasks *repository.TaskRepository) error {
		created, err := plans.Create(ctx, goal)
		if err != nil {
			return err
		}
		if _, err := tasks.BulkCreate(ctx, created.ID, specs); err != nil {
			return err
		}
		plan = created
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("plan %s created with %d tasks", plan.ID, len(specs))
	return plan, specs, nil
}

func (s *PlanService) acquireGenerationSlot(ctx context.Context) error {
	if err := s.tokenManager.AcquireToken(ctx); err != nil {
		if errors.Is(err, queue.ErrNoTokenAvailable) {
			return apperrors.ErrGenerationBusy
		}
		return fmt.Errorf("acquire generation slot: %w", err)
	}
	return nil
}

func (s *PlanService) releaseGenerationSlot(ctx context.Context) {
	if err := s.tokenManager.ReleaseToken(ctx); err != nil {
		log.Printf("failed to release generation slot: %v", err)
	}
}

func (s *PlanService) GetPlan(ctx context.Context, planID string) (*model.Plan, error) {
	return s.store.Plans().FindByID(ctx, planID)
}

func (s *PlanService) ListPlans(ctx context.Context) ([]model.PlanSummary, error) {
	return s.store.Plans().ListWithTaskCounts(ctx)
}

// DeletePlan removes the plan and its tasks in one transaction.
func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	if err := repository.ValidateID(planID); err != nil {
		return err
	}

	var removed int64
	err := s.store.Transaction(ctx, func(plans *repository.PlanRepository, tasks *repository.TaskRepository) error {
		n, err := tasks.DeleteByPlan(ctx, planID)
		if err != nil {
			return err
		}
		removed = n
		return plans.Delete(ctx, planID)
	})
	if err != nil {
		return err
	}

	log.Printf("plan %s deleted along with %d tasks", planID, removed)
	return nil
}
