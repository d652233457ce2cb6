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

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/statemachine"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	inviteTokenPrefix = "aqi_"
	// number of times a lost conditional update is re-read and retried
	maxTransitionAttempts = 3
)

var (
	errSubmitRejected  = errors.New("submit rejected")
	errStartRolledBack = errors.New("start rolled back")
)

type InvitationService struct {
	invitationRepository    shared.InvitationRepository
	assessmentRepository    shared.AssessmentRepository
	candidateRepoRepository shared.CandidateRepoRepository
	submissionRepository    shared.SubmissionRepository
	accessTokenRepository   shared.AccessTokenRepository

	seedService shared.SeedService
	provisioner shared.Provisioner
	broker      shared.CredentialBroker
	provider    shared.HostingProvider
	audit       shared.AuditService
	pubsub      shared.PubSubBroker

	hasher   utils.TokenHasher
	clock    shared.Clock
	retry    RetryPolicy
	tokenTTL time.Duration

	// startWait bounds how long a concurrent Start waits for the winner to
	// persist the candidate repository.
	startWait     time.Duration
	startWaitPoll time.Duration
}

var _ shared.InvitationService = &InvitationService{}

func NewInvitationService(
	invitationRepository shared.InvitationRepository,
	assessmentRepository shared.AssessmentRepository,
	candidateRepoRepository shared.CandidateRepoRepository,
	submissionRepository shared.SubmissionRepository,
	accessTokenRepository shared.AccessTokenRepository,
	seedService shared.SeedService,
	provisioner shared.Provisioner,
	broker shared.CredentialBroker,
	provider shared.HostingProvider,
	audit shared.AuditService,
	pubsub shared.PubSubBroker,
	hasher utils.TokenHasher,
	clock shared.Clock,
	retry RetryPolicy,
	cfg config.Config,
) *InvitationService {
	return &InvitationService{
		invitationRepository:    invitationRepository,
		assessmentRepository:    assessmentRepository,
		candidateRepoRepository: candidateRepoRepository,
		submissionRepository:    submissionRepository,
		accessTokenRepository:   accessTokenRepository,
		seedService:             seedService,
		provisioner:             provisioner,
		broker:                  broker,
		provider:                provider,
		audit:                   audit,
		pubsub:                  pubsub,
		hasher:                  hasher,
		clock:                   clock,
		retry:                   retry,
		tokenTTL:                cfg.DefaultTokenTTL,
		startWait:               10 * time.Second,
		startWaitPoll:           250 * time.Millisecond,
	}
}

// closedError explains why inv no longer accepts candidate actions.
func closedError(inv models.Invitation, now time.Time) error {
	switch inv.Status {
	case models.InvitationStatusRevoked:
		return errors.Wrapf(shared.ErrRevoked, "invitation %s", inv.ID)
	case models.InvitationStatusExpired:
		return errors.Wrapf(shared.ErrExpired, "invitation %s", inv.ID)
	case models.InvitationStatusSubmitted:
		return errors.Wrapf(shared.ErrInvalidTransition, "invitation %s is already submitted", inv.ID)
	}
	if deadline, ok := inv.RelevantDeadline(); ok && !now.Before(deadline) {
		return errors.Wrapf(shared.ErrExpired, "invitation %s is past its deadline", inv.ID)
	}
	return errors.Wrapf(shared.ErrInvalidTransition, "invitation %s is %s", inv.ID, inv.Status)
}

func (s *InvitationService) transitioned(ctx context.Context, id uuid.UUID, from, to models.InvitationStatus, actor string) {
	monitoring.InvitationTransitionTotal.WithLabelValues(string(from), string(to)).Inc()
	if err := s.pubsub.Publish(ctx, shared.NewLifecycleMessage(id, from, to, actor)); err != nil {
		slog.Warn("could not publish lifecycle event", "invitationID", id, "to", to, "err", err)
	}
}

func (s *InvitationService) CreateBatch(ctx context.Context, assessmentID uuid.UUID, candidates []shared.InvitationCandidate) ([]shared.CreatedInvitation, error) {
	assessment, err := s.assessmentRepository.Read(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Archived {
		return nil, errors.Wrapf(shared.ErrInvalidTransition, "assessment %s is archived", assessment.ID)
	}
	for _, c := range candidates {
		if err := shared.V.Var(c.Email, "required,email"); err != nil {
			return nil, errors.Wrapf(err, "invalid candidate email %q", c.Email)
		}
	}

	now := s.clock.Now()
	created := make([]shared.CreatedInvitation, 0, len(candidates))
	err = s.invitationRepository.Transaction(func(tx shared.DB) error {
		// durations may only change while no invitation exists
		assessment, err := s.assessmentRepository.ReadForShare(tx, assessmentID)
		if err != nil {
			return err
		}
		if assessment.Archived {
			return errors.Wrapf(shared.ErrInvalidTransition, "assessment %s is archived", assessment.ID)
		}
		for _, c := range candidates {
			raw, err := utils.GenerateOpaqueToken(inviteTokenPrefix)
			if err != nil {
				return err
			}
			inv := models.Invitation{
				AssessmentID:       assessment.ID,
				CandidateEmail:     c.Email,
				CandidateName:      c.Name,
				Status:             models.InvitationStatusSent,
				StartLinkTokenHash: s.hasher.Hash(raw),
				StartDeadline:      now.Add(assessment.TimeToStart()),
				SentAt:             now,
			}
			if err := s.invitationRepository.Create(tx, &inv); err != nil {
				return errors.Wrap(err, "could not create invitation")
			}
			if err := s.audit.RecordTx(tx, models.AuditInvitationCreated, models.ActorAdmin, &inv.ID, map[string]any{
				"email":         inv.CandidateEmail,
				"startDeadline": inv.StartDeadline,
			}); err != nil {
				return err
			}
			created = append(created, shared.CreatedInvitation{Invitation: inv, LinkToken: raw})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("invitations created", "assessmentID", assessment.ID, "count", len(created))
	return created, nil
}

// Accept records that the candidate opened the start link.
func (s *InvitationService) Accept(ctx context.Context, inv models.Invitation) (models.Invitation, error) {
	now := s.clock.Now()
	ok, err := s.invitationRepository.TransitionToAccepted(nil, inv.ID, now)
	if err != nil {
		return inv, err
	}
	current, err := s.invitationRepository.Read(inv.ID)
	if err != nil {
		return inv, err
	}
	if ok {
		s.audit.Record(ctx, models.AuditInvitationAccepted, models.ActorCandidate, &inv.ID, nil)
		s.transitioned(ctx, inv.ID, inv.Status, current.Status, models.ActorCandidate)
		return current, nil
	}

	switch current.Status {
	case models.InvitationStatusAccepted, models.InvitationStatusStarted:
		return current, shared.ErrAlreadyTransitioned
	}
	return current, closedError(current, now)
}

// Start moves the invitation to started, provisions the candidate repository
// and issues the first access token. Exactly one concurrent caller wins, the
// others get ErrAlreadyTransitioned together with the winner's result minus
// the raw token.
func (s *InvitationService) Start(ctx context.Context, inv models.Invitation) (shared.StartResult, error) {
	for range maxTransitionAttempts {
		current, err := s.invitationRepository.Read(inv.ID)
		if err != nil {
			return shared.StartResult{}, err
		}

		now := s.clock.Now()
		if current.Status == models.InvitationStatusStarted {
			result, err := s.awaitStarted(ctx, current)
			if errors.Is(err, errStartRolledBack) {
				// the winner gave up, take over
				continue
			}
			return result, err
		}
		next, effects, err := statemachine.Transition(current.Status, statemachine.TriggerStart)
		if err != nil || !now.Before(current.StartDeadline) {
			return shared.StartResult{}, closedError(current, now)
		}

		assessment, err := s.assessmentRepository.Read(current.AssessmentID)
		if err != nil {
			return shared.StartResult{}, err
		}

		completeDeadline := now.Add(assessment.TimeToComplete())
		ok, err := s.invitationRepository.StartIfPending(nil, current.ID, current.Status, now, completeDeadline)
		if err != nil {
			return shared.StartResult{}, err
		}
		if !ok {
			// lost against a concurrent transition, look again
			continue
		}

		prior := current.Status
		current.Status = next
		current.StartedAt = &now
		current.CompleteDeadline = &completeDeadline
		s.transitioned(ctx, current.ID, prior, current.Status, models.ActorCandidate)

		return s.completeStart(ctx, current, prior, assessment, effects)
	}
	return shared.StartResult{}, errors.Wrapf(shared.ErrInvalidTransition, "invitation %s changed concurrently", inv.ID)
}

func (s *InvitationService) completeStart(ctx context.Context, inv models.Invitation, prior models.InvitationStatus, assessment models.Assessment, effects []statemachine.SideEffect) (shared.StartResult, error) {
	var repo models.CandidateRepo
	var token shared.IssuedToken
	err := effectHandlers{
		statemachine.SideEffectProvisionRepo: func() (err error) {
			repo, err = s.provisionRepo(ctx, inv, assessment)
			return err
		},
		statemachine.SideEffectIssueToken: func() (err error) {
			token, err = s.issueToken(ctx, inv, repo)
			return err
		},
	}.run(effects, false)
	if err != nil {
		return shared.StartResult{}, s.rollbackStart(ctx, inv, prior, err)
	}

	s.audit.Record(ctx, models.AuditInvitationStarted, models.ActorCandidate, &inv.ID, map[string]any{
		"repo":             repo.RepoFullName,
		"seedSha":          repo.SeedSHAPinned,
		"completeDeadline": inv.CompleteDeadline,
	})
	return shared.StartResult{Invitation: inv, CandidateRepo: repo, Token: token}, nil
}

func (s *InvitationService) provisionRepo(ctx context.Context, inv models.Invitation, assessment models.Assessment) (models.CandidateRepo, error) {
	snapshot, err := s.seedService.Snapshot(assessment.SeedID)
	if err != nil {
		return models.CandidateRepo{}, err
	}
	// the assessment keeps the commit it was created with
	if assessment.SeedSHAPinned != "" {
		snapshot.PinnedCommit = assessment.SeedSHAPinned
	}
	return s.provisioner.Provision(ctx, snapshot, inv)
}

// issueToken retries storage failures. A revoke or expiry that committed
// first is final.
func (s *InvitationService) issueToken(ctx context.Context, inv models.Invitation, repo models.CandidateRepo) (shared.IssuedToken, error) {
	return utils.Retry(ctx, utils.RetryConfig{
		InitialInterval: s.retry.InitialInterval,
		MaxAttempts:     s.retry.MaxAttempts,
		Retryable: func(err error) bool {
			return !errors.Is(err, shared.ErrExpired) &&
				!errors.Is(err, shared.ErrRevoked) &&
				!errors.Is(err, shared.ErrInvalidTransition)
		},
	}, func(ctx context.Context) (shared.IssuedToken, error) {
		return s.broker.Issue(ctx, inv, repo, s.tokenTTL)
	})
}

// rollbackStart returns the invitation to prior so the candidate can try
// again. The candidate repository stays, provisioning reuses it.
func (s *InvitationService) rollbackStart(ctx context.Context, inv models.Invitation, prior models.InvitationStatus, cause error) error {
	ctx = context.WithoutCancel(ctx)
	reverted, err := s.invitationRepository.RevertStart(nil, inv.ID, prior)
	if err != nil {
		slog.Error("could not roll back start", "invitationID", inv.ID, "err", err, "cause", cause)
		return cause
	}
	if reverted {
		s.audit.Record(ctx, models.AuditStartRolledBack, models.ActorSystem, &inv.ID, map[string]any{
			"err": cause.Error(),
		})
		s.transitioned(ctx, inv.ID, models.InvitationStatusStarted, prior, models.ActorSystem)
	}
	return cause
}

func (s *InvitationService) awaitStarted(ctx context.Context, inv models.Invitation) (shared.StartResult, error) {
	deadline := time.Now().Add(s.startWait)
	for {
		repo, err := s.candidateRepoRepository.ReadByInvitationID(inv.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return shared.StartResult{}, err
		}
		// the repository outlives a rolled back start, only the status
		// tells whether the winner got through
		if err == nil || time.Now().After(deadline) {
			current, readErr := s.invitationRepository.Read(inv.ID)
			if readErr != nil {
				return shared.StartResult{}, readErr
			}
			switch {
			case statemachine.IsTerminal(current.Status):
				return shared.StartResult{}, closedError(current, s.clock.Now())
			case current.Status != models.InvitationStatusStarted:
				return shared.StartResult{}, errStartRolledBack
			case err == nil:
				return s.startedResult(current, repo)
			}
			return shared.StartResult{}, errors.Wrapf(shared.ErrUpstreamUnavailable, "repository of invitation %s is still being provisioned", inv.ID)
		}
		select {
		case <-ctx.Done():
			return shared.StartResult{}, ctx.Err()
		case <-time.After(s.startWaitPoll):
		}
	}
}

func (s *InvitationService) startedResult(inv models.Invitation, repo models.CandidateRepo) (shared.StartResult, error) {
	result := shared.StartResult{Invitation: inv, CandidateRepo: repo}
	token, err := s.accessTokenRepository.FindLiveByInvitationID(inv.ID, s.clock.Now())
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return shared.StartResult{}, err
	}
	if err == nil {
		result.Token = shared.IssuedToken{TokenID: token.ID, ExpiresAt: token.ExpiresAt, Scope: token.Scope}
	}
	return result, shared.ErrAlreadyTransitioned
}

// Reissue replaces the access token of a started invitation.
func (s *InvitationService) Reissue(ctx context.Context, inv models.Invitation) (shared.StartResult, error) {
	current, err := s.invitationRepository.Read(inv.ID)
	if err != nil {
		return shared.StartResult{}, err
	}
	now := s.clock.Now()
	_, effects, err := statemachine.Transition(current.Status, statemachine.TriggerReissue)
	if err != nil {
		return shared.StartResult{}, closedError(current, now)
	}
	if deadline, ok := current.RelevantDeadline(); ok && !now.Before(deadline) {
		return shared.StartResult{}, closedError(current, now)
	}

	repo, err := s.candidateRepoRepository.ReadByInvitationID(current.ID)
	if err != nil {
		return shared.StartResult{}, err
	}
	var token shared.IssuedToken
	err = effectHandlers{
		statemachine.SideEffectIssueToken: func() (err error) {
			token, err = s.issueToken(ctx, current, repo)
			return err
		},
	}.run(effects, false)
	if err != nil {
		return shared.StartResult{}, err
	}
	return shared.StartResult{Invitation: current, CandidateRepo: repo, Token: token}, nil
}

// Submit finalizes a started invitation. All access tokens are revoked in the
// same transaction, archiving the repository happens afterwards and is
// retried by the deadline enforcer when it fails.
func (s *InvitationService) Submit(ctx context.Context, inv models.Invitation, input shared.SubmitInput) (models.Submission, error) {
	current, err := s.invitationRepository.Read(inv.ID)
	if err != nil {
		return models.Submission{}, err
	}
	if current.Status == models.InvitationStatusSubmitted {
		return s.existingSubmission(current)
	}
	now := s.clock.Now()
	next, effects, err := statemachine.Transition(current.Status, statemachine.TriggerSubmit)
	if err != nil {
		return models.Submission{}, closedError(current, now)
	}

	repo, err := s.candidateRepoRepository.ReadByInvitationID(current.ID)
	if err != nil {
		return models.Submission{}, err
	}

	finalSHA := input.FinalSHA
	if finalSHA == "" {
		finalSHA, err = retryUpstream(ctx, s.audit, s.retry, "read final commit", &current.ID, func(ctx context.Context) (string, error) {
			return s.provider.GetBranchHead(ctx, repo.InstallationID, repo.Owner(), repo.Name(), repo.DefaultBranch)
		})
		if err != nil {
			return models.Submission{}, err
		}
	}

	now = s.clock.Now()
	var submission models.Submission
	err = s.invitationRepository.Transaction(func(tx shared.DB) error {
		ok, err := s.invitationRepository.MarkSubmitted(tx, current.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errSubmitRejected
		}
		handlers := s.closingEffects(ctx, tx, current.ID)
		handlers[statemachine.SideEffectCreateSubmission] = func() (err error) {
			submission, err = s.submissionRepository.CreateIfAbsent(tx, &models.Submission{
				InvitationID: current.ID,
				FinalSHA:     finalSHA,
				RepoHTMLURL:  repo.RepoHTMLURL,
				VideoURL:     input.VideoURL,
				Notes:        input.Notes,
			})
			return err
		}
		if err := handlers.run(effects, true); err != nil {
			return err
		}
		return s.audit.RecordTx(tx, models.AuditInvitationSubmitted, models.ActorCandidate, &current.ID, map[string]any{
			"finalSha": finalSHA,
		})
	})
	if errors.Is(err, errSubmitRejected) {
		return s.rejectedSubmit(current.ID)
	}
	if err != nil {
		return models.Submission{}, err
	}
	s.transitioned(ctx, current.ID, current.Status, next, models.ActorCandidate)

	err = effectHandlers{
		statemachine.SideEffectArchiveRepo: func() error {
			return s.archive(ctx, repo)
		},
	}.run(effects, false)
	if err != nil {
		slog.Warn("could not archive candidate repository, deadline enforcer will retry", "repo", repo.RepoFullName, "err", err)
	}
	return submission, nil
}

func (s *InvitationService) existingSubmission(inv models.Invitation) (models.Submission, error) {
	submission, err := s.submissionRepository.ReadByInvitationID(inv.ID)
	if err != nil {
		return models.Submission{}, err
	}
	return submission, shared.ErrAlreadyTransitioned
}

func (s *InvitationService) rejectedSubmit(id uuid.UUID) (models.Submission, error) {
	current, err := s.invitationRepository.Read(id)
	if err != nil {
		return models.Submission{}, err
	}
	if current.Status == models.InvitationStatusSubmitted {
		return s.existingSubmission(current)
	}
	now := s.clock.Now()
	if current.Status == models.InvitationStatusStarted {
		if deadline, ok := current.RelevantDeadline(); ok && now.Before(deadline) {
			// only an admin revoking every token leaves a started invitation
			// without one
			return models.Submission{}, errors.Wrapf(shared.ErrRevoked, "invitation %s has no live access token", id)
		}
	}
	return models.Submission{}, closedError(current, now)
}

func (s *InvitationService) archive(ctx context.Context, repo models.CandidateRepo) error {
	if _, err := retryUpstream(ctx, s.audit, s.retry, "archive candidate repository", &repo.InvitationID, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.provider.ArchiveRepository(ctx, repo.InstallationID, repo.Owner(), repo.Name())
	}); err != nil {
		return err
	}
	if err := s.candidateRepoRepository.MarkArchived(nil, repo.ID, s.clock.Now()); err != nil {
		return err
	}
	s.audit.Record(ctx, models.AuditRepoArchived, models.ActorSystem, &repo.InvitationID, map[string]any{
		"repo": repo.RepoFullName,
	})
	return nil
}

// ArchivePending archives repositories of submitted invitations whose
// archive call failed during Submit.
func (s *InvitationService) ArchivePending(ctx context.Context, limit int) (int, error) {
	repos, err := s.candidateRepoRepository.FindUnarchivedSubmitted(limit)
	if err != nil {
		return 0, err
	}
	archived := 0
	for _, repo := range repos {
		if err := s.archive(ctx, repo); err != nil {
			slog.Warn("could not archive candidate repository", "repo", repo.RepoFullName, "err", err)
			continue
		}
		archived++
	}
	return archived, nil
}

// Revoke closes the invitation for good. Access tokens are revoked in the
// same transaction, the repository is kept unarchived for review.
func (s *InvitationService) Revoke(ctx context.Context, invitationID uuid.UUID) (models.Invitation, error) {
	for range maxTransitionAttempts {
		current, err := s.invitationRepository.Read(invitationID)
		if err != nil {
			return models.Invitation{}, err
		}
		if current.Status == models.InvitationStatusRevoked {
			return current, shared.ErrAlreadyTransitioned
		}
		next, effects, err := statemachine.Transition(current.Status, statemachine.TriggerRevoke)
		if err != nil {
			return current, err
		}

		now := s.clock.Now()
		applied := false
		err = s.invitationRepository.Transaction(func(tx shared.DB) error {
			ok, err := s.invitationRepository.Revoke(tx, current.ID, current.Status, now)
			if err != nil || !ok {
				return err
			}
			applied = true
			if err := s.closingEffects(ctx, tx, current.ID).run(effects, true); err != nil {
				return err
			}
			return s.audit.RecordTx(tx, models.AuditInvitationRevoked, models.ActorAdmin, &current.ID, map[string]any{
				"from": string(current.Status),
			})
		})
		if err != nil {
			return models.Invitation{}, err
		}
		if !applied {
			continue
		}

		s.transitioned(ctx, current.ID, current.Status, next, models.ActorAdmin)
		return s.invitationRepository.Read(current.ID)
	}
	return models.Invitation{}, errors.Wrapf(shared.ErrInvalidTransition, "invitation %s changed concurrently", invitationID)
}

// Expire applies the expire transition if inv is still in the status it was
// read with and past its deadline. It reports whether this call expired it.
func (s *InvitationService) Expire(ctx context.Context, inv models.Invitation) (bool, error) {
	next, effects, err := statemachine.Transition(inv.Status, statemachine.TriggerExpire)
	if err != nil {
		// already terminal, nothing left to expire
		return false, nil
	}
	now := s.clock.Now()
	applied := false
	err = s.invitationRepository.Transaction(func(tx shared.DB) error {
		ok, err := s.invitationRepository.Expire(tx, inv.ID, inv.Status, now)
		if err != nil || !ok {
			return err
		}
		applied = true
		if err := s.closingEffects(ctx, tx, inv.ID).run(effects, true); err != nil {
			return err
		}
		deadline, _ := inv.RelevantDeadline()
		return s.audit.RecordTx(tx, models.AuditInvitationExpired, models.ActorSweeper, &inv.ID, map[string]any{
			"from":     string(inv.Status),
			"deadline": deadline,
		})
	})
	if err != nil {
		return false, err
	}
	if applied {
		s.transitioned(ctx, inv.ID, inv.Status, next, models.ActorSweeper)
	}
	return applied, nil
}
