package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/lukec3x/sgt-d3/internal/adapter/http/dto/request"
	response "github.com/lukec3x/sgt-d3/internal/adapter/http/dto/response"
	"github.com/lukec3x/sgt-d3/internal/usecase"
	"github.com/lukec3x/sgt-d3/pkg"
)

var errInvalidPolicyPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_INPUT", "Invalid policy payload", http.StatusBadRequest)

// PolicyHandler handles HTTP requests for insurance policies.

type PolicyHandler struct {
	usecase            usecase.IPolicyUseCase
	endorsementUseCase usecase.IEndorsementUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase, endorsementUC usecase.IEndorsementUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc, endorsementUseCase: endorsementUC}
}

// CreatePolicy issues a new policy from the supplied number, validity window
// and insured amount.
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var payload request.PolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	startDate, err := payload.ResolveStartDate()
	if err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}
	endDate, err := payload.ResolveEndDate()
	if err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	policy, err := h.usecase.Create(c.Request.Context(), payload.Number, startDate, endDate, payload.ResolveInsuredAmount())
	if err != nil {
		respondPolicyError(c, err)
		return
	}
	log.Printf("[policy][handler] create success policy_id=%s number=%s", policy.ID, policy.Number)

	c.JSON(http.StatusCreated, response.FromPolicy(policy))
}

// GetPolicy returns one policy with its endorsements embedded.
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id := c.Param("policy_id")

	policy, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondPolicyError(c, err)
		return
	}

	endorsements, err := h.endorsementUseCase.ListByPolicyID(c.Request.Context(), policy.ID)
	if err != nil {
		respondPolicyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyWithEndorsements(policy, endorsements))
}

// ListPolicies returns every policy.
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondPolicyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPolicies(policies))
}

// respondPolicyError writes validation failures in the legacy field-errors
// shape and everything else in the AppError envelope.
func respondPolicyError(c *gin.Context, err error) {
	var fieldErrs *pkg.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, fieldErrs.Fields())
		return
	}

	appErr := mapPolicyError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPolicyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
