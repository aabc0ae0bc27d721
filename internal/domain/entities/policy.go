package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/pkg"
)

// PolicyStatus represents the lifecycle of a policy (apólice).
//
// Domain notes:
//   - Status is derived, never set by callers after creation: the evaluator
//     reruns after every endorsement application or reversal.
//   - Wire values match the legacy system (ATIVA/BAIXADA).

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "ATIVA"
	PolicyStatusCancelled PolicyStatus = "BAIXADA"
)

// maxStartDateOffsetDays bounds how far (past or future) a policy's start
// date may sit from its issue date.
const maxStartDateOffsetDays = 30

// Policy is the insurance policy persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number
//
// Monetary representation:
//   - InsuredAmount is the original coverage fixed at issuance; it never
//     changes.
//   - MaximumCoverage is the current effective coverage, mutated by
//     endorsements and rebuilt on cancellation replay.
//
// StartDate/EndDate are the current validity window; OriginalStartDate and
// OriginalEndDate keep the issuance-time snapshot the replay starts from.
// Version guards the read-modify-write cycle of endorsement application:
// every applied endorsement increments it under a conditional write.
type Policy struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	IssueDate         time.Time       `json:"issue_date"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	OriginalStartDate time.Time       `json:"original_start_date"`
	OriginalEndDate   time.Time       `json:"original_end_date"`
	InsuredAmount     decimal.Decimal `json:"insured_amount"`
	MaximumCoverage   decimal.Decimal `json:"maximum_coverage"`
	Status            PolicyStatus    `json:"status"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewPolicy builds a policy issued today, applying creation defaults and
// collecting every invariant violation instead of stopping at the first.
func NewPolicy(number string, startDate, endDate time.Time, insuredAmount decimal.Decimal, today time.Time) (Policy, error) {
	today = Today(today)

	errs := pkg.NewFieldErrors()
	if number == "" {
		errs.Add("number", "can't be blank")
	}
	if endDate.Before(startDate) {
		errs.Add("end_date", "must be after start date")
	}
	if insuredAmount.IsNegative() {
		errs.Add("insured_amount", "must be greater than or equal to 0")
	}
	if DaysBetween(startDate, today) > maxStartDateOffsetDays {
		errs.Add("start_date", "must be within 30 days of issue date (past or future)")
	}
	if !errs.Empty() {
		return Policy{}, errs
	}

	return Policy{
		Number:            number,
		IssueDate:         today,
		StartDate:         Today(startDate),
		EndDate:           Today(endDate),
		OriginalStartDate: Today(startDate),
		OriginalEndDate:   Today(endDate),
		InsuredAmount:     insuredAmount,
		MaximumCoverage:   insuredAmount,
		Status:            PolicyStatusActive,
	}, nil
}

// ApplyEndorsement overlays the endorsement's present fields onto the
// policy's current state. Absent fields leave the policy untouched.
func (p *Policy) ApplyEndorsement(e Endorsement) {
	if e.InsuredAmount != nil {
		p.MaximumCoverage = *e.InsuredAmount
	}
	if e.StartDate != nil {
		p.StartDate = *e.StartDate
	}
	if e.EndDate != nil {
		p.EndDate = *e.EndDate
	}
}

// ResetToIssuance restores coverage and validity to the issuance snapshot.
func (p *Policy) ResetToIssuance() {
	p.MaximumCoverage = p.InsuredAmount
	p.StartDate = p.OriginalStartDate
	p.EndDate = p.OriginalEndDate
}

// Recalculate rebuilds the policy state from scratch: issuance snapshot plus
// every active non-cancellation endorsement reapplied in ascending sequence.
// The caller passes the full endorsement history; cancelled and cancellation
// entries are skipped here.
func (p *Policy) Recalculate(history []Endorsement) {
	p.ResetToIssuance()
	for _, e := range sortBySequence(history) {
		if e.Status != EndorsementStatusActive || e.EndorsementType == EndorsementTypeCancellation {
			continue
		}
		p.ApplyEndorsement(e)
	}
}

// RefreshStatus re-derives the policy status for the given date.
func (p *Policy) RefreshStatus(today time.Time) {
	p.Status = EvaluatePolicyStatus(p.StartDate, p.EndDate, p.IssueDate, today)
}

// EvaluatePolicyStatus derives a policy status from its validity window and
// issuance rule: active iff today falls inside [start, end] and the start
// date sits within 30 days of the issue date.
func EvaluatePolicyStatus(startDate, endDate, issueDate, today time.Time) PolicyStatus {
	withinValidity := WithinWindow(today, startDate, endDate)
	startDateValid := DaysBetween(startDate, issueDate) <= maxStartDateOffsetDays

	if withinValidity && startDateValid {
		return PolicyStatusActive
	}
	return PolicyStatusCancelled
}
