package integrationtestutil

import (
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const FixtureInstallationID int64 = 4711

type Fixtures struct {
	Org        models.Org
	Seed       models.Seed
	Assessment models.Assessment
}

// CreateFixtures persists an org with a github app installation, a seed and
// an assessment using the given durations.
func CreateFixtures(t *testing.T, db *gorm.DB, timeToStart, timeToComplete time.Duration) Fixtures {
	t.Helper()

	suffix := uuid.NewString()[:8]
	org := models.Org{Name: "Acme " + suffix, Slug: "acme-" + suffix, GithubOrgLogin: "acme-assessments"}
	require.NoError(t, db.Create(&org).Error)

	installation := models.GithubAppInstallation{
		InstallationID: FixtureInstallationID + time.Now().UnixNano()%100000,
		OrgID:          org.ID,
		TargetType:     "Organization",
		TargetLogin:    org.GithubOrgLogin,
	}
	require.NoError(t, db.Create(&installation).Error)
	org.GithubAppInstallations = []models.GithubAppInstallation{installation}

	seed := models.Seed{
		OrgID:              org.ID,
		InstallationID:     installation.InstallationID,
		SourceRepoURL:      "https://github.com/acme/backend-challenge",
		MirrorRepoFullName: "acme-assessments/afterquery-seed-" + suffix,
		MirrorRepoID:       1001,
		MirrorCloneURL:     "https://github.com/acme-assessments/afterquery-seed-" + suffix + ".git",
		DefaultBranch:      "main",
		LatestPinnedCommit: "0c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d",
	}
	require.NoError(t, db.Create(&seed).Error)

	assessment := models.Assessment{
		OrgID:                 org.ID,
		SeedID:                seed.ID,
		Title:                 "Backend challenge",
		TimeToStartSeconds:    int64(timeToStart / time.Second),
		TimeToCompleteSeconds: int64(timeToComplete / time.Second),
		SeedSHAPinned:         seed.LatestPinnedCommit,
	}
	require.NoError(t, db.Create(&assessment).Error)

	return Fixtures{Org: org, Seed: seed, Assessment: assessment}
}

// CreateInvitation persists a sent invitation of assessment.
func CreateInvitation(t *testing.T, db *gorm.DB, assessment models.Assessment, sentAt time.Time) models.Invitation {
	t.Helper()

	inv := models.Invitation{
		AssessmentID:       assessment.ID,
		CandidateEmail:     "jane@example.com",
		CandidateName:      "Jane Doe",
		Status:             models.InvitationStatusSent,
		StartLinkTokenHash: uuid.NewString(),
		StartDeadline:      sentAt.Add(assessment.TimeToStart()),
		SentAt:             sentAt,
	}
	require.NoError(t, db.Create(&inv).Error)
	return inv
}

// CreateCandidateRepo persists a candidate repository for inv.
func CreateCandidateRepo(t *testing.T, db *gorm.DB, inv models.Invitation, installationID int64) models.CandidateRepo {
	t.Helper()

	name := "acme-assessments/afterquery-candidate-jane-doe-" + inv.ID.String()[:8]
	repo := models.CandidateRepo{
		InvitationID:   inv.ID,
		InstallationID: installationID,
		RepoID:         time.Now().UnixNano() % 1000000,
		RepoFullName:   name,
		RepoHTMLURL:    "https://github.com/" + name,
		CloneURL:       "https://github.com/" + name + ".git",
		DefaultBranch:  "main",
		SeedSHAPinned:  "0c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d",
		Active:         true,
	}
	require.NoError(t, db.Create(&repo).Error)
	return repo
}
