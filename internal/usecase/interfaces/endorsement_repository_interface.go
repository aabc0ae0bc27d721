package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

// PolicyStateUpdate carries the policy-level fields an applied endorsement
// leaves behind. ExpectedVersion implements optimistic locking: the write
// only succeeds when the stored policy still has that version, so two
// concurrent endorsements against the same policy cannot interleave their
// read-modify-write.
type PolicyStateUpdate struct {
	PolicyID        string
	ExpectedVersion int64
	MaximumCoverage decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	Status          entities.PolicyStatus
}

// IEndorsementRepository abstracts DynamoDB persistence for Endorsement.
//
// Apply executes the whole endorsement effect as one atomic unit: persist the
// endorsement, update the parent policy's recalculated state, and, when the
// endorsement is a cancellation, flip the target endorsement's status to
// cancelled. Apply returns the zero-value Endorsement (and no error) when the
// version condition fails, mirroring how lookups report missing records.

type IEndorsementRepository interface {
	GetByID(ctx context.Context, id string) (entities.Endorsement, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.Endorsement, error)
	Apply(ctx context.Context, e entities.Endorsement, upd PolicyStateUpdate) (entities.Endorsement, error)
}
