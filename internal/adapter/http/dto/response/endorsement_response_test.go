package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
)

func date(s string) time.Time {
	d, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFromEndorsement(t *testing.T) {
	t.Run("coverage endorsement omits dates", func(t *testing.T) {
		amount := decimal.NewFromInt(150000)
		e := entities.Endorsement{
			ID:              "end-1",
			PolicyID:        "pol-1",
			Sequence:        1,
			EndorsementType: entities.EndorsementTypeIncreaseCoverage,
			Status:          entities.EndorsementStatusActive,
			InsuredAmount:   &amount,
			IssueDate:       date("2026-06-01"),
		}

		res := FromEndorsement(e)
		if res.EndorsementType != "aumento_is" || res.IssueDate != "2026-06-01" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.StartDate != nil || res.EndDate != nil {
			t.Fatal("expected start/end dates to be absent")
		}

		body, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		for _, absent := range []string{"start_date", "end_date", "cancelled_endorsement_id"} {
			if strings.Contains(string(body), absent) {
				t.Fatalf("expected %s omitted, got %s", absent, body)
			}
		}
	})

	t.Run("validity endorsement formats dates", func(t *testing.T) {
		start := date("2026-02-01")
		end := date("2027-02-01")
		e := entities.Endorsement{
			ID:              "end-2",
			EndorsementType: entities.EndorsementTypeChangeValidity,
			Status:          entities.EndorsementStatusActive,
			StartDate:       &start,
			EndDate:         &end,
			IssueDate:       date("2026-06-01"),
		}

		res := FromEndorsement(e)
		if res.StartDate == nil || *res.StartDate != "2026-02-01" {
			t.Fatalf("unexpected start date: %v", res.StartDate)
		}
		if res.EndDate == nil || *res.EndDate != "2027-02-01" {
			t.Fatalf("unexpected end date: %v", res.EndDate)
		}
	})

	t.Run("cancellation carries the target id", func(t *testing.T) {
		e := entities.Endorsement{
			ID:                     "end-3",
			EndorsementType:        entities.EndorsementTypeCancellation,
			Status:                 entities.EndorsementStatusActive,
			CancelledEndorsementID: "end-2",
			IssueDate:              date("2026-07-01"),
		}

		res := FromEndorsement(e)
		if res.CancelledEndorsementID != "end-2" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestFromEndorsements(t *testing.T) {
	out := FromEndorsements(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}
