package model

import (
	"task-planner.com/task-planner/internal/constants"
)

type Task struct {
	ID                string               `gorm:"primaryKey;size:36" json:"-"`
	PlanID            string               `gorm:"size:36;not null;uniqueIndex:idx_plan_task_number" json:"plan_id"`
	TaskNumber        int                  `gorm:"not null;uniqueIndex:idx_plan_task_number" json:"id"`
	Name              string               `gorm:"not null" json:"name"`
	Description       string               `gorm:"not null" json:"description"`
	EstimatedDuration Estimate             `gorm:"type:text;serializer:json" json:"estimated_duration"`
	Priority          constants.Priority   `gorm:"type:varchar(10);not null" json:"priority"`
	Dependencies      []int                `gorm:"type:text;serializer:json" json:"dependencies"`
	Status            constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
}

// TaskSpec is one task as produced by plan decomposition, before it is
// attached to a plan.
type TaskSpec struct {
	ID                int                `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	EstimatedDuration Estimate           `json:"estimated_duration"`
	Priority          constants.Priority `json:"priority"`
	Dependencies      []int              `json:"dependencies"`
}
