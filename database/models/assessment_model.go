package models

import (
	"time"

	"github.com/google/uuid"
)

type Assessment struct {
	Model
	OrgID  uuid.UUID `json:"orgId" gorm:"type:uuid;not null"`
	SeedID uuid.UUID `json:"seedId" gorm:"type:uuid;not null"`

	Title        string `json:"title" gorm:"type:text;not null"`
	Description  string `json:"description" gorm:"type:text"`
	Instructions string `json:"instructions" gorm:"type:text"`

	TimeToStartSeconds    int64 `json:"timeToStartSeconds" gorm:"column:time_to_start_seconds;not null"`
	TimeToCompleteSeconds int64 `json:"timeToCompleteSeconds" gorm:"column:time_to_complete_seconds;not null"`

	// SeedSHAPinned records the seed commit at the time the assessment was created.
	SeedSHAPinned string `json:"seedShaPinned" gorm:"column:seed_sha_pinned;type:text"`
	Archived      bool   `json:"archived" gorm:"default:false"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a Assessment) TimeToStart() time.Duration {
	return time.Duration(a.TimeToStartSeconds) * time.Second
}

func (a Assessment) TimeToComplete() time.Duration {
	return time.Duration(a.TimeToCompleteSeconds) * time.Second
}
