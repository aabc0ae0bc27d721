package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

// PolicyRequest is the payload accepted by POST /policies.
//
// Dates use the YYYY-MM-DD wire format. InsuredAmount is a pointer so that an
// explicit 0 passes the required binding while a missing field does not.
type PolicyRequest struct {
	Number        string           `json:"number" binding:"required"`
	StartDate     string           `json:"start_date" binding:"required"`
	EndDate       string           `json:"end_date" binding:"required"`
	InsuredAmount *decimal.Decimal `json:"insured_amount" binding:"required"`
}

func (r PolicyRequest) ResolveStartDate() (time.Time, error) {
	return entities.ParseDate(r.StartDate)
}

func (r PolicyRequest) ResolveEndDate() (time.Time, error) {
	return entities.ParseDate(r.EndDate)
}

// ResolveInsuredAmount rounds to the two fractional digits monetary values
// are stored with, so extra precision never reaches the domain.
func (r PolicyRequest) ResolveInsuredAmount() decimal.Decimal {
	if r.InsuredAmount == nil {
		return decimal.Zero
	}
	return r.InsuredAmount.Round(moneyScale)
}
