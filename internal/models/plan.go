package model

import "time"

type Plan struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Goal      string    `gorm:"not null" json:"goal"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// PlanSummary is a plan together with the number of tasks it owns.
type PlanSummary struct {
	ID        string `json:"id"`
	Goal      string `json:"goal"`
	TaskCount int64  `json:"task_count"`
}
