package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/lukec3x/sgt-d3/internal/adapter/http/dto/request"
	response "github.com/lukec3x/sgt-d3/internal/adapter/http/dto/response"
	"github.com/lukec3x/sgt-d3/internal/domain/entities"
	"github.com/lukec3x/sgt-d3/internal/usecase"
	"github.com/lukec3x/sgt-d3/pkg"
)

var errInvalidEndorsementPayload = pkg.NewDomainErrorSimple("INVALID_ENDORSEMENT_INPUT", "Invalid endorsement payload", http.StatusBadRequest)

// EndorsementHandler handles HTTP requests for policy endorsements.

type EndorsementHandler struct {
	usecase usecase.IEndorsementUseCase
}

func NewEndorsementHandler(uc usecase.IEndorsementUseCase) *EndorsementHandler {
	return &EndorsementHandler{usecase: uc}
}

// CreateEndorsement creates an endorsement for the policy in the path. The
// endorsement type is inferred from which supplied fields differ from the
// policy's current state.
func (h *EndorsementHandler) CreateEndorsement(c *gin.Context) {
	policyID := c.Param("policy_id")
	log.Printf("[endorsement][handler] create start policy_id=%s", policyID)

	var payload request.EndorsementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEndorsementPayload.HTTPStatus, errInvalidEndorsementPayload.ToHTTPError())
		return
	}

	change, err := payload.ResolveChange()
	if err != nil {
		log.Printf("[endorsement][handler] invalid payload policy_id=%s err=%v", policyID, err)
		c.JSON(errInvalidEndorsementPayload.HTTPStatus, errInvalidEndorsementPayload.ToHTTPError())
		return
	}

	endorsement, err := h.usecase.Create(c.Request.Context(), policyID, change)
	if err != nil {
		respondEndorsementError(c, err)
		return
	}
	log.Printf("[endorsement][handler] create success policy_id=%s endorsement_id=%s type=%s", policyID, endorsement.ID, endorsement.EndorsementType)

	c.JSON(http.StatusCreated, response.FromEndorsement(endorsement))
}

// CancelLastEndorsement issues a cancellation endorsement reversing the most
// recent active non-cancellation endorsement of the policy.
func (h *EndorsementHandler) CancelLastEndorsement(c *gin.Context) {
	policyID := c.Param("policy_id")
	log.Printf("[endorsement][handler] cancel start policy_id=%s", policyID)

	endorsement, err := h.usecase.CancelLast(c.Request.Context(), policyID)
	if err != nil {
		respondEndorsementError(c, err)
		return
	}
	log.Printf("[endorsement][handler] cancel success policy_id=%s endorsement_id=%s", policyID, endorsement.ID)

	c.JSON(http.StatusCreated, response.FromEndorsement(endorsement))
}

// ListEndorsementsByPolicy returns the policy's endorsements, newest first.
func (h *EndorsementHandler) ListEndorsementsByPolicy(c *gin.Context) {
	policyID := c.Param("policy_id")

	endorsements, err := h.usecase.ListByPolicyID(c.Request.Context(), policyID)
	if err != nil {
		respondEndorsementError(c, err)
		return
	}

	newestFirst := make([]entities.Endorsement, 0, len(endorsements))
	for i := len(endorsements) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, endorsements[i])
	}

	c.JSON(http.StatusOK, response.FromEndorsements(newestFirst))
}

// GetEndorsement returns a single endorsement by id.
func (h *EndorsementHandler) GetEndorsement(c *gin.Context) {
	id := c.Param("id")

	endorsement, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEndorsementError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromEndorsement(endorsement))
}

func respondEndorsementError(c *gin.Context, err error) {
	var fieldErrs *pkg.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, fieldErrs.Fields())
		return
	}

	appErr := mapEndorsementError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEndorsementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID), errors.Is(err, usecase.ErrInvalidEndorsementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEndorsementNotFound):
		return pkg.NewDomainErrorSimple("ENDORSEMENT_NOT_FOUND", "Endorsement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("POLICY_CONFLICT", "Policy was modified concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
