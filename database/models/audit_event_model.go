package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditEventKind string

const (
	AuditInvitationCreated   AuditEventKind = "invitation_created"
	AuditInvitationAccepted  AuditEventKind = "invitation_accepted"
	AuditInvitationStarted   AuditEventKind = "invitation_started"
	AuditStartRolledBack     AuditEventKind = "start_rolled_back"
	AuditInvitationSubmitted AuditEventKind = "invitation_submitted"
	AuditInvitationExpired   AuditEventKind = "invitation_expired"
	AuditInvitationRevoked   AuditEventKind = "invitation_revoked"
	AuditRepoProvisioned     AuditEventKind = "repo_provisioned"
	AuditRepoArchived        AuditEventKind = "repo_archived"
	AuditTokenIssued         AuditEventKind = "token_issued"
	AuditTokenRevoked        AuditEventKind = "token_revoked"
	AuditTokenExchanged      AuditEventKind = "token_exchanged"
	AuditTokenExchangeDenied AuditEventKind = "token_exchange_denied"
	AuditSeedResynced        AuditEventKind = "seed_resynced"
	AuditUpstreamRetry       AuditEventKind = "upstream_retry"
	AuditUpstreamExhausted   AuditEventKind = "upstream_exhausted"
)

const (
	ActorSystem    = "system"
	ActorCandidate = "candidate"
	ActorAdmin     = "admin"
	ActorSweeper   = "deadline-enforcer"
)

// AuditEvent rows are written once and never updated or deleted.
type AuditEvent struct {
	ID           int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt    time.Time         `json:"createdAt"`
	Kind         AuditEventKind    `json:"kind" gorm:"type:text;not null;index"`
	Actor        string            `json:"actor" gorm:"type:text;not null"`
	InvitationID *uuid.UUID        `json:"invitationId" gorm:"type:uuid;index"`
	Meta         datatypes.JSONMap `json:"meta" gorm:"type:jsonb"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
