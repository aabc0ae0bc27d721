package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

type PolicyResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number"`
	IssueDate       string                `json:"issue_date"`
	StartDate       string                `json:"start_date"`
	EndDate         string                `json:"end_date"`
	InsuredAmount   decimal.Decimal       `json:"insured_amount"`
	MaximumCoverage decimal.Decimal       `json:"maximum_coverage"`
	Status          string                `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Endorsements    []EndorsementResponse `json:"endorsements,omitempty"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	return PolicyResponse{
		ID:              p.ID,
		Number:          p.Number,
		IssueDate:       entities.FormatDate(p.IssueDate),
		StartDate:       entities.FormatDate(p.StartDate),
		EndDate:         entities.FormatDate(p.EndDate),
		InsuredAmount:   p.InsuredAmount,
		MaximumCoverage: p.MaximumCoverage,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromPolicyWithEndorsements embeds the policy's endorsements, mirroring the
// show endpoint of the previous version of this API.
func FromPolicyWithEndorsements(p entities.Policy, endorsements []entities.Endorsement) PolicyResponse {
	res := FromPolicy(p)
	res.Endorsements = FromEndorsements(endorsements)
	return res
}

func FromPolicies(policies []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p))
	}
	return out
}
