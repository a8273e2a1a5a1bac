package api

import (
	"net/http"

	resdto "pos-loyalty/internal/handler/dto/response"
	"pos-loyalty/internal/handler/httperr"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TierHandler struct {
	tiers   commands.TierCommands
	catalog queries.CatalogQueries
}

func NewTierHandler(tiers commands.TierCommands, catalog queries.CatalogQueries) *TierHandler {
	return &TierHandler{tiers: tiers, catalog: catalog}
}

// @Summary Evaluate tier
// @Description Re-evaluate one account against the current tier catalog
// @Tags tiers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.TierOutcomeResponse
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/tier/evaluate [post]
func (h *TierHandler) Evaluate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	outcome, err := h.tiers.Evaluate(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTierOutcome(outcome))
}

// @Summary Evaluate all tiers
// @Description Re-evaluate every active account; per-account failures are reported, not fatal
// @Tags tiers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BatchEvaluationResponse
// @Failure 403 {object} httperr.Response
// @Router /tiers/evaluate-all [post]
func (h *TierHandler) EvaluateAll(c *gin.Context) {
	batch, err := h.tiers.EvaluateAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatchEvaluation(batch))
}

// @Summary List tiers
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TierResponse
// @Router /tiers [get]
func (h *TierHandler) ListTiers(c *gin.Context) {
	views, err := h.catalog.ListTiers(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTierViews(views))
}

// @Summary List rewards
// @Description Active rewards, featured first
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RewardResponse
// @Router /rewards [get]
func (h *TierHandler) ListRewards(c *gin.Context) {
	views, err := h.catalog.ListRewards(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardViews(views))
}
