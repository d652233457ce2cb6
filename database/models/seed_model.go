package models

import (
	"time"

	"github.com/google/uuid"
)

type Seed struct {
	Model
	OrgID          uuid.UUID `json:"orgId" gorm:"type:uuid;not null"`
	InstallationID int64     `json:"installationId" gorm:"not null"`

	SourceRepoURL      string `json:"sourceRepoUrl" gorm:"type:text;not null"`
	MirrorRepoFullName string `json:"mirrorRepoFullName" gorm:"type:text;uniqueIndex;not null"`
	MirrorRepoID       int64  `json:"mirrorRepoId" gorm:"not null"`
	MirrorCloneURL     string `json:"mirrorCloneUrl" gorm:"type:text"`
	DefaultBranch      string `json:"defaultBranch" gorm:"type:text;not null;default:main"`

	// LatestPinnedCommit only moves through an explicit resync. It is advisory
	// for new assessments and never touches existing candidate repositories.
	LatestPinnedCommit string     `json:"latestPinnedCommit" gorm:"type:text"`
	LastSyncedAt       *time.Time `json:"lastSyncedAt"`
}

func (Seed) TableName() string {
	return "seeds"
}

// SeedSnapshot is one consistent read of a seed. Provisioning works on a
// snapshot instead of the live row so a concurrent resync cannot change the
// commit halfway through.
type SeedSnapshot struct {
	SeedID             uuid.UUID
	InstallationID     int64
	MirrorRepoFullName string
	MirrorCloneURL     string
	DefaultBranch      string
	PinnedCommit       string
}

func (s Seed) Snapshot() SeedSnapshot {
	return SeedSnapshot{
		SeedID:             s.ID,
		InstallationID:     s.InstallationID,
		MirrorRepoFullName: s.MirrorRepoFullName,
		MirrorCloneURL:     s.MirrorCloneURL,
		DefaultBranch:      s.DefaultBranch,
		PinnedCommit:       s.LatestPinnedCommit,
	}
}
