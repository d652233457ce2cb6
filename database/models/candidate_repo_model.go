package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CandidateRepo struct {
	Model
	InvitationID   uuid.UUID `json:"invitationId" gorm:"type:uuid;uniqueIndex;not null"`
	InstallationID int64     `json:"installationId" gorm:"not null"`

	RepoID        int64  `json:"repoId" gorm:"not null"`
	RepoFullName  string `json:"repoFullName" gorm:"type:text;uniqueIndex;not null"`
	RepoHTMLURL   string `json:"repoHtmlUrl" gorm:"type:text"`
	CloneURL      string `json:"cloneUrl" gorm:"type:text"`
	DefaultBranch string `json:"defaultBranch" gorm:"type:text;not null"`

	// SeedSHAPinned is the diff baseline. It is copied once at creation.
	SeedSHAPinned string `json:"seedShaPinned" gorm:"column:seed_sha_pinned;type:text;not null"`

	Active     bool       `json:"active" gorm:"default:true"`
	Archived   bool       `json:"archived" gorm:"default:false"`
	ArchivedAt *time.Time `json:"archivedAt"`
}

func (CandidateRepo) TableName() string {
	return "candidate_repos"
}

// Owner and Name split RepoFullName ("owner/name").
func (c CandidateRepo) Owner() string {
	owner, _, _ := strings.Cut(c.RepoFullName, "/")
	return owner
}

func (c CandidateRepo) Name() string {
	_, name, found := strings.Cut(c.RepoFullName, "/")
	if !found {
		return c.RepoFullName
	}
	return name
}
