package repository

import (
	"context"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Plans() *PlanRepository {
	return NewPlanRepository(s.db)
}

func (s *Store) Tasks() *TaskRepository {
	return NewTaskRepository(s.db)
}

// Transaction runs fn with repositories bound to a single database
// transaction. Any error returned by fn rolls the transaction back.
func (s *Store) Transaction(ctx context.Context, fn func(plans *PlanRepository, tasks *TaskRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPlanRepository(tx), NewTaskRepository(tx))
	})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
