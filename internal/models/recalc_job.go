package models

import (
	"time"

	"gorm.io/gorm"
)

// RecalcJob tracks one batch recalculation run over stored assessments,
// typically triggered after a standards update.
type RecalcJob struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RequestedBy  uint           `gorm:"index" json:"requested_by"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Total        int            `json:"total"`
	Processed    int            `json:"processed"`
	Failed       int            `json:"failed"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Job status constants
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

func (j *RecalcJob) TableName() string {
	return "recalc_jobs"
}
