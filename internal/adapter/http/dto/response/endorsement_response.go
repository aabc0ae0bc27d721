package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

type EndorsementResponse struct {
	ID                     string           `json:"id"`
	PolicyID               string           `json:"policy_id"`
	Sequence               int64            `json:"sequence"`
	IssueDate              string           `json:"issue_date"`
	EndorsementType        string           `json:"endorsement_type"`
	InsuredAmount          *decimal.Decimal `json:"insured_amount,omitempty"`
	StartDate              *string          `json:"start_date,omitempty"`
	EndDate                *string          `json:"end_date,omitempty"`
	CancelledEndorsementID string           `json:"cancelled_endorsement_id,omitempty"`
	Status                 string           `json:"status"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

func FromEndorsement(e entities.Endorsement) EndorsementResponse {
	res := EndorsementResponse{
		ID:                     e.ID,
		PolicyID:               e.PolicyID,
		Sequence:               e.Sequence,
		IssueDate:              entities.FormatDate(e.IssueDate),
		EndorsementType:        string(e.EndorsementType),
		InsuredAmount:          e.InsuredAmount,
		CancelledEndorsementID: e.CancelledEndorsementID,
		Status:                 string(e.Status),
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
	if e.StartDate != nil {
		startDate := entities.FormatDate(*e.StartDate)
		res.StartDate = &startDate
	}
	if e.EndDate != nil {
		endDate := entities.FormatDate(*e.EndDate)
		res.EndDate = &endDate
	}
	return res
}

func FromEndorsements(endorsements []entities.Endorsement) []EndorsementResponse {
	out := make([]EndorsementResponse, 0, len(endorsements))
	for _, e := range endorsements {
		out = append(out, FromEndorsement(e))
	}
	return out
}
