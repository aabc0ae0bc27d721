package request

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

// EndorsementRequest is the payload accepted by POST
// /policies/:policy_id/endorsements. Every field is optional: a missing field
// means "leave that part of the policy alone". The endorsement type is never
// part of the payload; it is inferred from which fields actually change.
type EndorsementRequest struct {
	InsuredAmount *decimal.Decimal `json:"insured_amount"`
	StartDate     *string          `json:"start_date"`
	EndDate       *string          `json:"end_date"`
}

// moneyScale is the number of fractional digits monetary values carry.
const moneyScale = 2

// ResolveChange translates the wire payload into the domain change delta.
// Amounts are rounded to the stored scale before classification ever compares
// them against the policy's current coverage.
func (r EndorsementRequest) ResolveChange() (entities.EndorsementChange, error) {
	change := entities.EndorsementChange{}
	if r.InsuredAmount != nil {
		amount := r.InsuredAmount.Round(moneyScale)
		change.InsuredAmount = &amount
	}

	if r.StartDate != nil {
		startDate, err := entities.ParseDate(*r.StartDate)
		if err != nil {
			return entities.EndorsementChange{}, fmt.Errorf("invalid start_date: %w", err)
		}
		change.StartDate = &startDate
	}
	if r.EndDate != nil {
		endDate, err := entities.ParseDate(*r.EndDate)
		if err != nil {
			return entities.EndorsementChange{}, fmt.Errorf("invalid end_date: %w", err)
		}
		change.EndDate = &endDate
	}

	return change, nil
}
