// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"
	"time"

	"github.com/afterquery/assessment-broker/common"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
)

type OrgRepository interface {
	common.Repository[uuid.UUID, models.Org, DB]
	ReadBySlug(slug string) (models.Org, error)
	ReadWithInstallations(id uuid.UUID) (models.Org, error)
}

type GithubAppInstallationRepository interface {
	Save(tx DB, model *models.GithubAppInstallation) error
	Read(installationID int64) (models.GithubAppInstallation, error)
	FindByOrgID(orgID uuid.UUID) ([]models.GithubAppInstallation, error)
}

type SeedRepository interface {
	common.Repository[uuid.UUID, models.Seed, DB]
	FindByOrgID(orgID uuid.UUID) ([]models.Seed, error)
	UpdatePinnedCommit(tx DB, seedID uuid.UUID, sha string, syncedAt time.Time) error
}

type AssessmentRepository interface {
	common.Repository[uuid.UUID, models.Assessment, DB]
	FindByOrgID(orgID uuid.UUID) ([]models.Assessment, error)
	HasInvitations(tx DB, assessmentID uuid.UUID) (bool, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.Assessment, error)
	ReadForShare(tx DB, id uuid.UUID) (models.Assessment, error)
}

// InvitationRepository owns every status change of an invitation. Each
// transition is a single conditional update which reports whether it applied.
type InvitationRepository interface {
	common.Repository[uuid.UUID, models.Invitation, DB]
	ReadByLinkTokenHash(hash string) (models.Invitation, error)
	ListByAssessment(assessmentID uuid.UUID) ([]models.Invitation, error)
	FindDue(now time.Time, limit int) ([]models.Invitation, error)

	TransitionToAccepted(tx DB, id uuid.UUID, now time.Time) (bool, error)
	StartIfPending(tx DB, id uuid.UUID, prior models.InvitationStatus, now, completeDeadline time.Time) (bool, error)
	RevertStart(tx DB, id uuid.UUID, prior models.InvitationStatus) (bool, error)
	MarkSubmitted(tx DB, id uuid.UUID, now time.Time) (bool, error)
	Expire(tx DB, id uuid.UUID, prior models.InvitationStatus, now time.Time) (bool, error)
	Revoke(tx DB, id uuid.UUID, prior models.InvitationStatus, now time.Time) (bool, error)
}

type CandidateRepoRepository interface {
	ReadByInvitationID(invitationID uuid.UUID) (models.CandidateRepo, error)
	// CreateIfAbsent inserts repo unless the invitation already has one and
	// returns the persisted row together with whether this call inserted it.
	CreateIfAbsent(tx DB, repo *models.CandidateRepo) (models.CandidateRepo, bool, error)
	MarkArchived(tx DB, id uuid.UUID, now time.Time) error
	Deactivate(tx DB, invitationID uuid.UUID) error
	FindUnarchivedSubmitted(limit int) ([]models.CandidateRepo, error)
}

type AccessTokenRepository interface {
	Read(id uuid.UUID) (models.AccessToken, error)
	ReadByHash(hash string) (models.AccessToken, error)
	FindLiveByInvitationID(invitationID uuid.UUID, now time.Time) (models.AccessToken, error)
	// ReplaceLive revokes every unrevoked token of the invitation and inserts
	// token in the same transaction.
	ReplaceLive(tx DB, token *models.AccessToken, now time.Time) error
	RevokeAllForInvitation(tx DB, invitationID uuid.UUID, now time.Time) (int64, error)
	MarkUsedIfLive(tx DB, id uuid.UUID, now time.Time) (bool, error)
	RevokeLiveOfTerminalInvitations(tx DB, now time.Time) (int64, error)
}

type SubmissionRepository interface {
	CreateIfAbsent(tx DB, submission *models.Submission) (models.Submission, error)
	ReadByInvitationID(invitationID uuid.UUID) (models.Submission, error)
}

// AuditEventRepository is append only.
type AuditEventRepository interface {
	Create(tx DB, event *models.AuditEvent) error
	ListByInvitationID(invitationID uuid.UUID) ([]models.AuditEvent, error)
}

type HostedRepository struct {
	ID            int64
	FullName      string
	HTMLURL       string
	CloneURL      string
	DefaultBranch string
	Description   string
}

// DelegatedCredential is a short lived credential minted by the hosting
// provider. It is handed to the caller and never persisted.
type DelegatedCredential struct {
	Username     string
	Token        string
	ExpiresAt    time.Time
	RepositoryID int64
	Host         string
}

type HostingProvider interface {
	CreatePrivateRepository(ctx context.Context, installationID int64, owner, name, description string) (HostedRepository, error)
	GetRepository(ctx context.Context, installationID int64, owner, name string) (HostedRepository, error)
	SetDefaultBranch(ctx context.Context, installationID int64, owner, name, branch string) error
	GetBranchHead(ctx context.Context, installationID int64, owner, name, branch string) (string, error)
	ArchiveRepository(ctx context.Context, installationID int64, owner, name string) error
	DeleteRepository(ctx context.Context, installationID int64, owner, name string) error

	// PushCommit pushes sha from sourceCloneURL to branch of targetCloneURL.
	PushCommit(ctx context.Context, installationID int64, sourceCloneURL, sha, targetCloneURL, branch string) error
	MirrorRepository(ctx context.Context, installationID int64, sourceURL, targetCloneURL string) error

	MintRepositoryCredential(ctx context.Context, installationID int64, repoID int64, scope models.AccessScope) (DelegatedCredential, error)
	RevokeCredential(ctx context.Context, token string) error
}

type IssuedToken struct {
	// Token is the raw opaque token. It is only available right after issuing.
	Token     string
	TokenID   uuid.UUID
	ExpiresAt time.Time
	Scope     models.AccessScope
}

type CredentialBroker interface {
	Issue(ctx context.Context, inv models.Invitation, repo models.CandidateRepo, ttl time.Duration) (IssuedToken, error)
	Exchange(ctx context.Context, rawToken string) (DelegatedCredential, error)
	Revoke(ctx context.Context, tx DB, invitationID uuid.UUID) (int64, error)
}

type SeedService interface {
	Register(ctx context.Context, org models.Org, sourceURL, defaultBranch string) (models.Seed, error)
	Resync(ctx context.Context, seedID uuid.UUID) (string, error)
	Snapshot(seedID uuid.UUID) (models.SeedSnapshot, error)
}

type Provisioner interface {
	Provision(ctx context.Context, snapshot models.SeedSnapshot, inv models.Invitation) (models.CandidateRepo, error)
}

type AuditService interface {
	Record(ctx context.Context, kind models.AuditEventKind, actor string, invitationID *uuid.UUID, meta map[string]any)
	RecordTx(tx DB, kind models.AuditEventKind, actor string, invitationID *uuid.UUID, meta map[string]any) error
	List(invitationID uuid.UUID) ([]models.AuditEvent, error)
}

type InvitationCandidate struct {
	Email string
	Name  string
}

type CreatedInvitation struct {
	Invitation models.Invitation
	// LinkToken is the raw start link token. It is only returned on creation.
	LinkToken string
}

type StartResult struct {
	Invitation    models.Invitation
	CandidateRepo models.CandidateRepo
	Token         IssuedToken
}

type SubmitInput struct {
	FinalSHA string
	VideoURL *string
	Notes    string
}

type InvitationService interface {
	CreateBatch(ctx context.Context, assessmentID uuid.UUID, candidates []InvitationCandidate) ([]CreatedInvitation, error)
	Accept(ctx context.Context, inv models.Invitation) (models.Invitation, error)
	Start(ctx context.Context, inv models.Invitation) (StartResult, error)
	Reissue(ctx context.Context, inv models.Invitation) (StartResult, error)
	Submit(ctx context.Context, inv models.Invitation, input SubmitInput) (models.Submission, error)
	Revoke(ctx context.Context, invitationID uuid.UUID) (models.Invitation, error)
	Expire(ctx context.Context, inv models.Invitation) (bool, error)
	ArchivePending(ctx context.Context, limit int) (int, error)
}

type AssessmentService interface {
	Create(ctx context.Context, assessment *models.Assessment) error
	Update(ctx context.Context, assessmentID uuid.UUID, patch AssessmentPatch) (models.Assessment, error)
}

type AssessmentPatch struct {
	Title                 *string
	Description           *string
	Instructions          *string
	TimeToStartSeconds    *int64
	TimeToCompleteSeconds *int64
	Archived              *bool
}

func (p AssessmentPatch) ChangesDurations() bool {
	return p.TimeToStartSeconds != nil || p.TimeToCompleteSeconds != nil
}

type DeadlineEnforcer interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

type SweepResult struct {
	Due      int
	Expired  int
	Repaired int64
	Archived int
}
