package interfaces

import (
	"context"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// The service must be able to:
//   - create a policy (id must not already exist)
//   - fetch a policy by id or by business number
//   - list every policy
//
// Lookups return the zero-value Policy when nothing matches; callers decide
// whether that is a not-found error.

type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	GetByNumber(ctx context.Context, number string) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
}
