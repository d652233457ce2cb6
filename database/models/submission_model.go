package models

import (
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CreatedAt    time.Time `json:"createdAt"`
	InvitationID uuid.UUID `json:"invitationId" gorm:"type:uuid;uniqueIndex;not null"`

	FinalSHA    string  `json:"finalSha" gorm:"column:final_sha;type:text;not null"`
	RepoHTMLURL string  `json:"repoHtmlUrl" gorm:"type:text"`
	VideoURL    *string `json:"videoUrl" gorm:"type:text"`
	Notes       string  `json:"notes" gorm:"type:text"`
}

func (Submission) TableName() string {
	return "submissions"
}
