package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/pkg"
)

// EndorsementType identifies what kind of change an endorsement (endosso)
// applies to its policy. Values match the legacy wire format.
//
// Every type except cancellation is computed from the supplied fields, never
// accepted from the caller.

type EndorsementType string

const (
	EndorsementTypeIncreaseCoverage            EndorsementType = "aumento_is"
	EndorsementTypeDecreaseCoverage            EndorsementType = "reducao_is"
	EndorsementTypeChangeValidity              EndorsementType = "alteracao_vigencia"
	EndorsementTypeIncreaseCoverageAndValidity EndorsementType = "aumento_is_alteracao_vigencia"
	EndorsementTypeDecreaseCoverageAndValidity EndorsementType = "reducao_is_alteracao_vigencia"
	EndorsementTypeCancellation                EndorsementType = "cancelamento"
)

type EndorsementStatus string

const (
	EndorsementStatusActive    EndorsementStatus = "ativo"
	EndorsementStatusCancelled EndorsementStatus = "cancelado"
)

// Endorsement is an amendment applied to a policy, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (policy_id-index): policy_id, range key sequence
//
// Sequence is a per-policy monotonic counter assigned at creation; it backs
// both cancellation target resolution (highest sequence wins) and replay
// order (ascending). InsuredAmount/StartDate/EndDate are optional: nil means
// "this endorsement does not touch that field". Once persisted an endorsement
// is immutable except for Status, which a later cancellation may flip.
type Endorsement struct {
	ID                     string            `json:"id"`
	PolicyID               string            `json:"policy_id"`
	Sequence               int64             `json:"sequence"`
	EndorsementType        EndorsementType   `json:"endorsement_type"`
	Status                 EndorsementStatus `json:"status"`
	InsuredAmount          *decimal.Decimal  `json:"insured_amount,omitempty"`
	StartDate              *time.Time        `json:"start_date,omitempty"`
	EndDate                *time.Time        `json:"end_date,omitempty"`
	CancelledEndorsementID string            `json:"cancelled_endorsement_id,omitempty"`
	IssueDate              time.Time         `json:"issue_date"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// EndorsementChange is the caller-supplied delta for a new endorsement. A nil
// field was not supplied at all; classification later also clears supplied
// fields that equal the policy's current state, so downstream code never has
// to distinguish "absent" from "set to the current value".
type EndorsementChange struct {
	InsuredAmount *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
}

// Normalize returns a copy of the change with every field that matches the
// policy's current state cleared. A supplied value equal to what the policy
// already has represents no actual change.
func (c EndorsementChange) Normalize(p Policy) EndorsementChange {
	out := c
	if out.InsuredAmount != nil && out.InsuredAmount.Equal(p.MaximumCoverage) {
		out.InsuredAmount = nil
	}
	if out.StartDate != nil && SameDate(*out.StartDate, p.StartDate) {
		out.StartDate = nil
	}
	if out.EndDate != nil && SameDate(*out.EndDate, p.EndDate) {
		out.EndDate = nil
	}
	return out
}

// ClassifyEndorsement infers the endorsement type from which normalized
// fields remain present. It never mutates its inputs; the returned change is
// the normalized delta the endorsement should carry.
//
// An empty type means the change is a no-op, which validation rejects.
func ClassifyEndorsement(c EndorsementChange, p Policy) (EndorsementType, EndorsementChange) {
	norm := c.Normalize(p)

	hasCoverageChange := norm.InsuredAmount != nil
	hasValidityChange := norm.StartDate != nil || norm.EndDate != nil

	switch {
	case hasCoverageChange && hasValidityChange:
		if norm.InsuredAmount.GreaterThan(p.MaximumCoverage) {
			return EndorsementTypeIncreaseCoverageAndValidity, norm
		}
		return EndorsementTypeDecreaseCoverageAndValidity, norm
	case hasCoverageChange:
		if norm.InsuredAmount.GreaterThan(p.MaximumCoverage) {
			return EndorsementTypeIncreaseCoverage, norm
		}
		return EndorsementTypeDecreaseCoverage, norm
	case hasValidityChange:
		return EndorsementTypeChangeValidity, norm
	default:
		return "", norm
	}
}

// LastActiveNonCancellation resolves the cancellation target: the
// highest-sequence endorsement that is still active and is not itself a
// cancellation. Returns false when nothing is left to cancel.
func LastActiveNonCancellation(history []Endorsement) (Endorsement, bool) {
	var target Endorsement
	found := false
	for _, e := range history {
		if e.Status != EndorsementStatusActive || e.EndorsementType == EndorsementTypeCancellation {
			continue
		}
		if !found || e.Sequence > target.Sequence {
			target = e
			found = true
		}
	}
	return target, found
}

// ValidateEndorsement runs the type-specific field requirements plus the
// universal consistency checks against the policy snapshot. All failures are
// collected; a nil return means the endorsement may be persisted.
func ValidateEndorsement(e Endorsement, p Policy) error {
	errs := pkg.NewFieldErrors()

	switch e.EndorsementType {
	case EndorsementTypeCancellation:
		if e.CancelledEndorsementID == "" {
			errs.Add(pkg.FieldErrorsBase, "No endorsement to cancel")
		}
	case EndorsementTypeIncreaseCoverage, EndorsementTypeDecreaseCoverage:
		validateCoverageChange(e, errs)
	case EndorsementTypeChangeValidity:
		validateValidityChange(e, errs)
	case EndorsementTypeIncreaseCoverageAndValidity, EndorsementTypeDecreaseCoverageAndValidity:
		validateCoverageChange(e, errs)
		validateValidityChange(e, errs)
	default:
		errs.Add(pkg.FieldErrorsBase, "no change specified")
	}

	if e.InsuredAmount != nil && e.InsuredAmount.IsNegative() {
		errs.Add("insured_amount", "cannot be negative")
	}
	if e.StartDate != nil && e.EndDate != nil {
		effectiveStart := *e.StartDate
		effectiveEnd := *e.EndDate
		if effectiveEnd.Before(effectiveStart) {
			errs.Add("end_date", "must be after start date")
		}
	}

	return errs.ErrOrNil()
}

func validateCoverageChange(e Endorsement, errs *pkg.FieldErrors) {
	if e.InsuredAmount == nil {
		errs.Add("insured_amount", "must be present for this endorsement type")
	}
}

func validateValidityChange(e Endorsement, errs *pkg.FieldErrors) {
	if e.StartDate == nil && e.EndDate == nil {
		errs.Add(pkg.FieldErrorsBase, "must change at least one validity date")
	}
}

// NextSequence returns the sequence the next endorsement of this policy
// should take.
func NextSequence(history []Endorsement) int64 {
	var max int64
	for _, e := range history {
		if e.Sequence > max {
			max = e.Sequence
		}
	}
	return max + 1
}

func sortBySequence(history []Endorsement) []Endorsement {
	out := make([]Endorsement, len(history))
	copy(out, history)
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}
