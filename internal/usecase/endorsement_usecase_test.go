package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
	"github.com/lukec3x/sgt-d3/internal/usecase/interfaces"
	mock_interfaces "github.com/lukec3x/sgt-d3/internal/usecase/interfaces/mocks"
)

func amountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func dayPtr(offsetDays int) *time.Time {
	d := day(offsetDays)
	return &d
}

// activePolicy builds a policy issued today whose validity window contains
// today, so status evaluation after an endorsement stays ATIVA. Version is
// zero: tests that supply a history bump it to match.
func activePolicy() entities.Policy {
	return entities.Policy{
		ID:                "pol-1",
		Number:            "AP-001",
		IssueDate:         day(0),
		StartDate:         day(0),
		EndDate:           day(365),
		OriginalStartDate: day(0),
		OriginalEndDate:   day(365),
		InsuredAmount:     decimal.NewFromInt(100000),
		MaximumCoverage:   decimal.NewFromInt(100000),
		Status:            entities.PolicyStatusActive,
	}
}

func endorsementMocks(t *testing.T) (*mock_interfaces.MockIEndorsementRepository, *mock_interfaces.MockIPolicyRepository, *EndorsementUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIEndorsementRepository(ctrl)
	policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
	return repo, policyRepo, NewEndorsementUseCase(repo, policyRepo)
}

func TestEndorsementUseCase_Create(t *testing.T) {
	t.Run("coverage increase", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
				if e.EndorsementType != entities.EndorsementTypeIncreaseCoverage {
					t.Fatalf("expected aumento_is, got %q", e.EndorsementType)
				}
				if e.Sequence != 1 {
					t.Fatalf("expected sequence 1, got %d", e.Sequence)
				}
				if e.Status != entities.EndorsementStatusActive {
					t.Fatalf("expected ativo, got %q", e.Status)
				}
				if upd.ExpectedVersion != 0 {
					t.Fatalf("expected version guard 0, got %d", upd.ExpectedVersion)
				}
				if !upd.MaximumCoverage.Equal(decimal.NewFromInt(150000)) {
					t.Fatalf("expected coverage 150000, got %v", upd.MaximumCoverage)
				}
				if !upd.StartDate.Equal(policy.StartDate) || !upd.EndDate.Equal(policy.EndDate) {
					t.Fatal("validity window should be untouched by a coverage endorsement")
				}
				if upd.Status != entities.PolicyStatusActive {
					t.Fatalf("expected ATIVA, got %q", upd.Status)
				}
				return e, nil
			})

		e, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{InsuredAmount: amountPtr(150000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.InsuredAmount == nil || !e.InsuredAmount.Equal(decimal.NewFromInt(150000)) {
			t.Fatalf("unexpected endorsement amount: %v", e.InsuredAmount)
		}
	})

	t.Run("validity change", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
				if e.EndorsementType != entities.EndorsementTypeChangeValidity {
					t.Fatalf("expected alteracao_vigencia, got %q", e.EndorsementType)
				}
				if !upd.MaximumCoverage.Equal(policy.MaximumCoverage) {
					t.Fatal("coverage should be untouched by a validity endorsement")
				}
				if !upd.EndDate.Equal(day(400)) {
					t.Fatalf("expected new end date, got %v", upd.EndDate)
				}
				return e, nil
			})

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{EndDate: dayPtr(400)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("combined decrease and validity change", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
				if e.EndorsementType != entities.EndorsementTypeDecreaseCoverageAndValidity {
					t.Fatalf("expected reducao_is_alteracao_vigencia, got %q", e.EndorsementType)
				}
				if !upd.MaximumCoverage.Equal(decimal.NewFromInt(80000)) {
					t.Fatalf("expected coverage 80000, got %v", upd.MaximumCoverage)
				}
				return e, nil
			})

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{
			InsuredAmount: amountPtr(80000),
			EndDate:       dayPtr(200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sequence follows existing history", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()
		policy.Version = 1
		policy.MaximumCoverage = decimal.NewFromInt(150000)

		history := []entities.Endorsement{
			{ID: "end-1", PolicyID: "pol-1", Sequence: 1, EndorsementType: entities.EndorsementTypeIncreaseCoverage, Status: entities.EndorsementStatusActive, InsuredAmount: amountPtr(150000)},
		}
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(history, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
				if e.Sequence != 2 {
					t.Fatalf("expected sequence 2, got %d", e.Sequence)
				}
				if upd.ExpectedVersion != 1 {
					t.Fatalf("expected version guard 1, got %d", upd.ExpectedVersion)
				}
				return e, nil
			})

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{EndDate: dayPtr(500)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("change equal to current state rejected", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{InsuredAmount: amountPtr(100000)})
		assertFieldError(t, err, "base")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{InsuredAmount: amountPtr(-1)})
		assertFieldError(t, err, "insured_amount")
	})

	t.Run("policy not found", func(t *testing.T) {
		_, policyRepo, uc := endorsementMocks(t)

		policyRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Policy{}, nil)

		_, err := uc.Create(context.Background(), "missing", entities.EndorsementChange{InsuredAmount: amountPtr(1)})
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Endorsement{}, nil)

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{InsuredAmount: amountPtr(150000)})
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("stale history read surfaces conflict", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()
		policy.Version = 1

		// Version 1 means one applied endorsement, but the index read returns
		// none: the write must not proceed against the incomplete history.
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), "pol-1", entities.EndorsementChange{InsuredAmount: amountPtr(150000)})
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestEndorsementUseCase_CancelLast(t *testing.T) {
	t.Run("cancels last active endorsement and replays the rest", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()
		// Current state reflects both applied endorsements.
		policy.MaximumCoverage = decimal.NewFromInt(150000)
		policy.EndDate = day(400)
		policy.Version = 2

		history := []entities.Endorsement{
			{ID: "end-a", PolicyID: "pol-1", Sequence: 1, EndorsementType: entities.EndorsementTypeIncreaseCoverage, Status: entities.EndorsementStatusActive, InsuredAmount: amountPtr(150000)},
			{ID: "end-b", PolicyID: "pol-1", Sequence: 2, EndorsementType: entities.EndorsementTypeChangeValidity, Status: entities.EndorsementStatusActive, EndDate: dayPtr(400)},
		}
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(history, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
				if e.EndorsementType != entities.EndorsementTypeCancellation {
					t.Fatalf("expected cancelamento, got %q", e.EndorsementType)
				}
				if e.CancelledEndorsementID != "end-b" {
					t.Fatalf("expected end-b cancelled, got %q", e.CancelledEndorsementID)
				}
				if e.Sequence != 3 {
					t.Fatalf("expected sequence 3, got %d", e.Sequence)
				}
				// end-a survives the replay; end-b's validity change is undone.
				if !upd.MaximumCoverage.Equal(decimal.NewFromInt(150000)) {
					t.Fatalf("expected coverage 150000 after replay, got %v", upd.MaximumCoverage)
				}
				if !upd.EndDate.Equal(day(365)) {
					t.Fatalf("expected end date restored to original, got %v", upd.EndDate)
				}
				if upd.Status != entities.PolicyStatusActive {
					t.Fatalf("expected ATIVA, got %q", upd.Status)
				}
				return e, nil
			})

		e, err := uc.CancelLast(context.Background(), "pol-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.CancelledEndorsementID != "end-b" {
			t.Fatalf("unexpected target: %q", e.CancelledEndorsementID)
		}
	})

	t.Run("skips cancelled and cancellation endorsements when picking the target", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()
		policy.MaximumCoverage = decimal.NewFromInt(150000)
		policy.Version = 3

		history := []entities.Endorsement{
			{ID: "end-a", PolicyID: "pol-1", Sequence: 1, EndorsementType: entities.EndorsementTypeIncreaseCoverage, Status: entities.EndorsementStatusActive, InsuredAmount: amountPtr(150000)},
			{ID: "end-b", PolicyID: "pol-1", Sequence: 2, EndorsementType: entities.EndorsementTypeChangeValidity, Status: entities.EndorsementStatusCancelled, EndDate: dayPtr(400)},
			{ID: "end-c", PolicyID: "pol-1", Sequence: 3, EndorsementType: entities.EndorsementTypeCancellation, Status: entities.EndorsementStatusActive, CancelledEndorsementID: "end-b"},
		}
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(history, nil)
		repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
				if e.CancelledEndorsementID != "end-a" {
					t.Fatalf("expected end-a cancelled, got %q", e.CancelledEndorsementID)
				}
				if !upd.MaximumCoverage.Equal(decimal.NewFromInt(100000)) {
					t.Fatalf("expected coverage restored to 100000, got %v", upd.MaximumCoverage)
				}
				return e, nil
			})

		if _, err := uc.CancelLast(context.Background(), "pol-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no endorsement to cancel", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)

		_, err := uc.CancelLast(context.Background(), "pol-1")
		assertFieldError(t, err, "base")
	})

	t.Run("stale history read surfaces conflict instead of nothing-to-cancel", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policy := activePolicy()
		policy.MaximumCoverage = decimal.NewFromInt(150000)
		policy.Version = 1

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(policy, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return(nil, nil)

		_, err := uc.CancelLast(context.Background(), "pol-1")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestEndorsementUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, _, uc := endorsementMocks(t)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidEndorsementID) {
			t.Fatalf("expected ErrInvalidEndorsementID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, uc := endorsementMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "end-1").Return(entities.Endorsement{}, nil)

		_, err := uc.GetByID(context.Background(), "end-1")
		if !errors.Is(err, ErrEndorsementNotFound) {
			t.Fatalf("expected ErrEndorsementNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		repo, _, uc := endorsementMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "end-1").Return(entities.Endorsement{ID: "end-1"}, nil)

		e, err := uc.GetByID(context.Background(), "end-1")
		if err != nil || e.ID != "end-1" {
			t.Fatalf("unexpected result: %+v err=%v", e, err)
		}
	})
}

func TestEndorsementUseCase_ListByPolicyID(t *testing.T) {
	t.Run("policy not found", func(t *testing.T) {
		_, policyRepo, uc := endorsementMocks(t)
		policyRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Policy{}, nil)

		_, err := uc.ListByPolicyID(context.Background(), "missing")
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		repo, policyRepo, uc := endorsementMocks(t)
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(entities.Policy{ID: "pol-1"}, nil)
		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return([]entities.Endorsement{{ID: "end-1"}}, nil)

		list, err := uc.ListByPolicyID(context.Background(), "pol-1")
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result: %v err=%v", list, err)
		}
	})
}
