package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
	"github.com/lukec3x/sgt-d3/internal/usecase/interfaces"
	"github.com/lukec3x/sgt-d3/pkg"
)

var (
	ErrPolicyNotFound  = errors.New("policy not found")
	ErrInvalidPolicyID = errors.New("invalid policy id")
)

// IPolicyUseCase exposes policy operations.
//
// A policy fixes its insured amount and validity window at issuance; later
// changes only ever arrive through endorsements (see IEndorsementUseCase).

type IPolicyUseCase interface {
	Create(ctx context.Context, number string, startDate, endDate time.Time, insuredAmount decimal.Decimal) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
}

type PolicyUseCase struct {
	repo interfaces.IPolicyRepository
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository) *PolicyUseCase {
	return &PolicyUseCase{repo: repo}
}

func (u *PolicyUseCase) Create(ctx context.Context, number string, startDate, endDate time.Time, insuredAmount decimal.Decimal) (entities.Policy, error) {
	number = strings.TrimSpace(number)

	p, err := entities.NewPolicy(number, startDate, endDate, insuredAmount, time.Now().UTC())
	if err != nil {
		log.Printf("[policy][usecase] create rejected number=%q err=%v", number, err)
		return entities.Policy{}, err
	}

	// Enforce: policy numbers are unique across all policies.
	if existing, err := u.repo.GetByNumber(ctx, number); err != nil {
		return entities.Policy{}, err
	} else if existing.ID != "" {
		errs := pkg.NewFieldErrors()
		errs.Add("number", "has already been taken")
		log.Printf("[policy][usecase] create rejected number=%q already taken", number)
		return entities.Policy{}, errs
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Policy{}, err
	}
	log.Printf("[policy][usecase] create success policy_id=%s number=%s", created.ID, created.Number)
	return created, nil
}

func (u *PolicyUseCase) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) List(ctx context.Context) ([]entities.Policy, error) {
	return u.repo.List(ctx)
}
