package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-planner.com/task-planner/internal/constants"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Plan{}, &model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func sampleSpecs() []model.TaskSpec {
	return []model.TaskSpec{
		{ID: 1, Name: "Research", Description: "Look around", EstimatedDuration: model.NewEstimate(2, constants.UnitHours), Priority: constants.PriorityHigh},
		{ID: 2, Name: "Build", Description: "Make it", EstimatedDuration: model.NewEstimate(3, constants.UnitDays), Priority: constants.PriorityMedium, Dependencies: []int{1}},
		{ID: 3, Name: "Ship", Description: "Release", EstimatedDuration: model.NewEstimate(1, constants.UnitWeeks), Priority: constants.PriorityLow, Dependencies: []int{1, 2}},
	}
}

func createPlanWithTasks(t *testing.T, store *Store, goal string) *model.Plan {
	t.Helper()
	ctx := context.Background()

	plan, err := store.Plans().Create(ctx, goal)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if _, err := store.Tasks().BulkCreate(ctx, plan.ID, sampleSpecs()); err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	return plan
}

func TestPlanRepository_CreateAndFind(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	plan, err := store.Plans().Create(ctx, "Learn Spanish")
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if _, err := uuid.Parse(plan.ID); err != nil {
		t.Errorf("expected uuid id, got %q", plan.ID)
	}

	found, err := store.Plans().FindByID(ctx, plan.ID)
	if err != nil {
		t.Fatalf("find plan: %v", err)
	}
	if found.Goal != "Learn Spanish" {
		t.Errorf("expected goal Learn Spanish, got %q", found.Goal)
	}

	dup, err := store.Plans().Create(ctx, "Learn Spanish")
	if err != nil {
		t.Fatalf("duplicate goals should be allowed: %v", err)
	}
	if dup.ID == plan.ID {
		t.Error("expected a fresh id for the duplicate goal")
	}
}

func TestPlanRepository_FindByID_NotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	_, err := store.Plans().FindByID(ctx, uuid.NewString())
	if !errors.Is(err, apperrors.ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}

	_, err = store.Plans().FindByID(ctx, "not-a-plan-id")
	if !errors.Is(err, apperrors.ErrMalformedPlanID) {
		t.Errorf("expected ErrMalformedPlanID, got %v", err)
	}
	if apperrors.Message(err) != apperrors.ErrPlanNotFound.Message {
		t.Errorf("malformed ids should read as not found, got %q", apperrors.Message(err))
	}
}

func TestPlanRepository_ListWithTaskCounts(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	withTasks := createPlanWithTasks(t, store, "Ship a product")
	empty, err := store.Plans().Create(ctx, "Nothing yet")
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	summaries, err := store.Plans().ListWithTaskCounts(ctx)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(summaries))
	}

	counts := map[string]int64{}
	for _, s := range summaries {
		counts[s.ID] = s.TaskCount
	}
	if counts[withTasks.ID] != 3 {
		t.Errorf("expected 3 tasks, got %d", counts[withTasks.ID])
	}
	if counts[empty.ID] != 0 {
		t.Errorf("expected 0 tasks, got %d", counts[empty.ID])
	}
}

func TestTaskRepository_BulkCreateAndFind(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	plan := createPlanWithTasks(t, store, "Ship a product")

	tasks, err := store.Tasks().FindByPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("find tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	for i, task := range tasks {
		if task.TaskNumber != i+1 {
			t.Errorf("expected task number %d, got %d", i+1, task.TaskNumber)
		}
		if task.Status != constants.StatusPending {
			t.Errorf("expected pending status, got %s", task.Status)
		}
	}

	if tasks[0].Dependencies == nil || len(tasks[0].Dependencies) != 0 {
		t.Errorf("expected empty dependency list, got %#v", tasks[0].Dependencies)
	}
	if deps := tasks[2].Dependencies; len(deps) != 2 || deps[0] != 1 || deps[1] != 2 {
		t.Errorf("unexpected dependencies %v", deps)
	}
	if got := tasks[1].EstimatedDuration.String(); got != "3 days" {
		t.Errorf("expected duration to round-trip, got %q", got)
	}
}

func TestTaskRepository_TaskNumberUniquePerPlan(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	plan := createPlanWithTasks(t, store, "Ship a product")

	_, err := store.Tasks().BulkCreate(ctx, plan.ID, sampleSpecs()[:1])
	if err == nil {
		t.Fatal("expected duplicate task number to be rejected")
	}

	other := createPlanWithTasks(t, store, "Another plan")
	if count, _ := store.Tasks().CountByPlan(ctx, other.ID); count != 3 {
		t.Errorf("task numbers should be reusable across plans, got %d tasks", count)
	}
}

func TestTaskRepository_LegacyDurationRow(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()
	plan, _ := store.Plans().Create(ctx, "Legacy")

	err := db.Exec(
		"INSERT INTO tasks (id, plan_id, task_number, name, description, estimated_duration, priority, dependencies, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		uuid.NewString(), plan.ID, 1, "Old task", "From before units", "4", "High", "[]", "pending",
	).Error
	if err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	tasks, err := store.Tasks().FindByPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("find tasks: %v", err)
	}
	if _, ok := tasks[0].EstimatedDuration.Duration.(model.LegacyDuration); !ok {
		t.Fatalf("expected legacy duration, got %T", tasks[0].EstimatedDuration.Duration)
	}
	if got := tasks[0].EstimatedDuration.Hours(); got != 96 {
		t.Errorf("expected 96 hours, got %v", got)
	}
}

func TestTaskRepository_UpdateStatus(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	plan := createPlanWithTasks(t, store, "Ship a product")
	repo := store.Tasks()

	if err := repo.UpdateStatus(ctx, plan.ID, 2, constants.StatusInProgress); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := repo.UpdateStatus(ctx, plan.ID, 2, constants.StatusInProgress); err != nil {
		t.Errorf("setting the same status again should succeed: %v", err)
	}

	if n, _ := repo.CountByPlanAndStatus(ctx, plan.ID, constants.StatusInProgress); n != 1 {
		t.Errorf("expected 1 in-progress task, got %d", n)
	}
	if n, _ := repo.CountByPlanAndStatus(ctx, plan.ID, constants.StatusPending); n != 2 {
		t.Errorf("expected 2 pending tasks, got %d", n)
	}
}

func TestTaskRepository_UpdateStatus_Rejections(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	plan := createPlanWithTasks(t, store, "Ship a product")
	repo := store.Tasks()

	if err := repo.UpdateStatus(ctx, plan.ID, 1, "done"); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, plan.ID, 99, constants.StatusCompleted); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	if n, _ := repo.CountByPlanAndStatus(ctx, plan.ID, constants.StatusPending); n != 3 {
		t.Errorf("rejected updates must not change state, got %d pending", n)
	}
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	var planID string
	err := store.Transaction(ctx, func(plans *PlanRepository, tasks *TaskRepository) error {
		plan, err := plans.Create(ctx, "Rolled back")
		if err != nil {
			return err
		}
		planID = plan.ID
		if _, err := tasks.BulkCreate(ctx, plan.ID, sampleSpecs()); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := store.Plans().FindByID(ctx, planID); !errors.Is(err, apperrors.ErrPlanNotFound) {
		t.Errorf("plan should not survive rollback, got %v", err)
	}
	if n, _ := store.Tasks().CountByPlan(ctx, planID); n != 0 {
		t.Errorf("tasks should not survive rollback, got %d", n)
	}
}

func TestRepositories_DeleteCascade(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	plan := createPlanWithTasks(t, store, "Ship a product")

	removed, err := store.Tasks().DeleteByPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("delete tasks: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed tasks, got %d", removed)
	}
	if err := store.Plans().Delete(ctx, plan.ID); err != nil {
		t.Fatalf("delete plan: %v", err)
	}

	if err := store.Plans().Delete(ctx, plan.ID); !errors.Is(err, apperrors.ErrPlanNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
	if err := store.Plans().Delete(ctx, "garbage"); !errors.Is(err, apperrors.ErrMalformedPlanID) {
		t.Errorf("expected ErrMalformedPlanID, got %v", err)
	}
}
