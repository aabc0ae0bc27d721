package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
	"github.com/lukec3x/sgt-d3/internal/usecase/interfaces"
)

var (
	ErrEndorsementNotFound  = errors.New("endorsement not found")
	ErrInvalidEndorsementID = errors.New("invalid endorsement id")
	ErrConcurrentUpdate     = errors.New("policy was modified concurrently")
)

// IEndorsementUseCase exposes endorsement operations.
//
// Create classifies the supplied change against the policy's current state,
// validates it, and applies it to the policy in one atomic write. CancelLast
// issues a cancellation endorsement that reverses the most recent active
// non-cancellation endorsement and rebuilds the policy state by replaying the
// surviving history.

type IEndorsementUseCase interface {
	Create(ctx context.Context, policyID string, change entities.EndorsementChange) (entities.Endorsement, error)
	CancelLast(ctx context.Context, policyID string) (entities.Endorsement, error)
	GetByID(ctx context.Context, id string) (entities.Endorsement, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.Endorsement, error)
}

type EndorsementUseCase struct {
	repo       interfaces.IEndorsementRepository
	policyRepo interfaces.IPolicyRepository
}

var _ IEndorsementUseCase = (*EndorsementUseCase)(nil)

func NewEndorsementUseCase(repo interfaces.IEndorsementRepository, policyRepo interfaces.IPolicyRepository) *EndorsementUseCase {
	return &EndorsementUseCase{repo: repo, policyRepo: policyRepo}
}

func (u *EndorsementUseCase) Create(ctx context.Context, policyID string, change entities.EndorsementChange) (entities.Endorsement, error) {
	policy, history, err := u.loadPolicyWithHistory(ctx, policyID)
	if err != nil {
		return entities.Endorsement{}, err
	}

	endorsementType, norm := entities.ClassifyEndorsement(change, policy)

	now := time.Now().UTC()
	e := entities.Endorsement{
		ID:              uuid.NewString(),
		PolicyID:        policy.ID,
		Sequence:        entities.NextSequence(history),
		EndorsementType: endorsementType,
		Status:          entities.EndorsementStatusActive,
		InsuredAmount:   norm.InsuredAmount,
		StartDate:       norm.StartDate,
		EndDate:         norm.EndDate,
		IssueDate:       entities.Today(now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := entities.ValidateEndorsement(e, policy); err != nil {
		log.Printf("[endorsement][usecase] create rejected policy_id=%s err=%v", policy.ID, err)
		return entities.Endorsement{}, err
	}

	// Forward application: overlay the endorsement onto the current state.
	updated := policy
	updated.ApplyEndorsement(e)
	updated.RefreshStatus(now)

	return u.apply(ctx, e, policy, updated)
}

func (u *EndorsementUseCase) CancelLast(ctx context.Context, policyID string) (entities.Endorsement, error) {
	policy, history, err := u.loadPolicyWithHistory(ctx, policyID)
	if err != nil {
		return entities.Endorsement{}, err
	}

	target, found := entities.LastActiveNonCancellation(history)

	now := time.Now().UTC()
	e := entities.Endorsement{
		ID:              uuid.NewString(),
		PolicyID:        policy.ID,
		Sequence:        entities.NextSequence(history),
		EndorsementType: entities.EndorsementTypeCancellation,
		Status:          entities.EndorsementStatusActive,
		IssueDate:       entities.Today(now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if found {
		e.CancelledEndorsementID = target.ID
	}

	if err := entities.ValidateEndorsement(e, policy); err != nil {
		log.Printf("[endorsement][usecase] cancel rejected policy_id=%s err=%v", policy.ID, err)
		return entities.Endorsement{}, err
	}

	// Reversal: replay the history with the target removed from play.
	survivors := make([]entities.Endorsement, 0, len(history))
	for _, h := range history {
		if h.ID == target.ID {
			h.Status = entities.EndorsementStatusCancelled
		}
		survivors = append(survivors, h)
	}
	updated := policy
	updated.Recalculate(survivors)
	updated.RefreshStatus(now)

	applied, err := u.apply(ctx, e, policy, updated)
	if err != nil {
		return entities.Endorsement{}, err
	}
	log.Printf("[endorsement][usecase] cancel success policy_id=%s endorsement_id=%s cancelled_id=%s", policy.ID, applied.ID, target.ID)
	return applied, nil
}

func (u *EndorsementUseCase) GetByID(ctx context.Context, id string) (entities.Endorsement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Endorsement{}, ErrInvalidEndorsementID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Endorsement{}, err
	}
	if e.ID == "" {
		return entities.Endorsement{}, ErrEndorsementNotFound
	}
	return e, nil
}

func (u *EndorsementUseCase) ListByPolicyID(ctx context.Context, policyID string) ([]entities.Endorsement, error) {
	policy, err := u.getPolicy(ctx, policyID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByPolicyID(ctx, policy.ID)
}

func (u *EndorsementUseCase) loadPolicyWithHistory(ctx context.Context, policyID string) (entities.Policy, []entities.Endorsement, error) {
	policy, err := u.getPolicy(ctx, policyID)
	if err != nil {
		return entities.Policy{}, nil, err
	}

	history, err := u.repo.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.Policy{}, nil, err
	}

	// The history query runs against a GSI, which DynamoDB only serves
	// eventually consistently. The policy version counts applied endorsements,
	// so a history that does not line up with the version just read is stale;
	// classifying or replaying against it could miss an endorsement entirely.
	// Surface it as a retryable conflict instead.
	if entities.NextSequence(history) != policy.Version+1 {
		log.Printf("[endorsement][usecase] stale history policy_id=%s version=%d history_len=%d", policy.ID, policy.Version, len(history))
		return entities.Policy{}, nil, ErrConcurrentUpdate
	}
	return policy, history, nil
}

func (u *EndorsementUseCase) getPolicy(ctx context.Context, policyID string) (entities.Policy, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}

	policy, err := u.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return entities.Policy{}, err
	}
	if policy.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return policy, nil
}

// apply persists the endorsement together with the recalculated policy state.
// The repository conditions the write on the version read at the start of the
// operation; a failed condition means another writer got there first.
func (u *EndorsementUseCase) apply(ctx context.Context, e entities.Endorsement, read, updated entities.Policy) (entities.Endorsement, error) {
	applied, err := u.repo.Apply(ctx, e, interfaces.PolicyStateUpdate{
		PolicyID:        read.ID,
		ExpectedVersion: read.Version,
		MaximumCoverage: updated.MaximumCoverage,
		StartDate:       updated.StartDate,
		EndDate:         updated.EndDate,
		Status:          updated.Status,
	})
	if err != nil {
		return entities.Endorsement{}, err
	}
	if applied.ID == "" {
		log.Printf("[endorsement][usecase] apply conflict policy_id=%s version=%d", read.ID, read.Version)
		return entities.Endorsement{}, ErrConcurrentUpdate
	}
	log.Printf("[endorsement][usecase] apply success policy_id=%s endorsement_id=%s type=%s", read.ID, applied.ID, applied.EndorsementType)
	return applied, nil
}
