package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lukec3x/sgt-d3/internal/adapter/http/handlers"
)

const (
	PathPolicies     = "/policies"
	PathEndorsements = "/endorsements"
)

func addInsuranceRoutes(rg *gin.RouterGroup, policyHandler *handlers.PolicyHandler, endorsementHandler *handlers.EndorsementHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("", policyHandler.CreatePolicy)
		policies.GET("", policyHandler.ListPolicies)
		// Same wildcard name as the endorsement routes below, gin requires it.
		policies.GET("/:policy_id", policyHandler.GetPolicy)
	}

	// Endorsements are created and cancelled under their policy; show is
	// top-level like the legacy API.
	policyEndorsements := rg.Group(PathPolicies + "/:policy_id" + PathEndorsements)
	{
		policyEndorsements.GET("", endorsementHandler.ListEndorsementsByPolicy)
		policyEndorsements.POST("", endorsementHandler.CreateEndorsement)
		policyEndorsements.POST("/cancel", endorsementHandler.CancelLastEndorsement)
	}

	endorsements := rg.Group(PathEndorsements)
	{
		endorsements.GET("/:id", endorsementHandler.GetEndorsement)
	}
}
