package api

import (
	"net/http"

	reqdto "pos-loyalty/internal/handler/dto/request"
	resdto "pos-loyalty/internal/handler/dto/response"
	"pos-loyalty/internal/handler/httperr"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	q    queries.RedemptionQueries
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, q queries.RedemptionQueries) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, q: q}
}

// @Summary Redeem reward
// @Description Spend points on a reward. Replaying the same Idempotency-Key returns the original redemption with 200.
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.RedeemRequest true "Reward to redeem"
// @Success 201 {object} resdto.RedeemResponse
// @Success 200 {object} resdto.RedeemResponse "Replay"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /accounts/{id}/redemptions [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), commands.RedeemInput{
		AccountID:      accountID,
		RewardID:       req.RewardID,
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRedeemResult(result))
}

// @Summary Get redemption
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} httperr.Response
// @Router /redemptions/{id} [get]
func (h *RedemptionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionView(*view))
}

// @Summary Use redemption code
// @Description Mark an issued code as used at the till
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UseRedemptionRequest true "Code presented by the customer"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /redemptions/use [post]
func (h *RedemptionHandler) Use(c *gin.Context) {
	var req reqdto.UseRedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	redemption, err := h.cmds.Use(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionView(queries.NewRedemptionView(redemption)))
}

// @Summary Cancel redemption
// @Description Void an issued redemption, refund its points and return the stock unit
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /redemptions/{id}/cancel [post]
func (h *RedemptionHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "idempotency key must be a UUID"), errs.ErrIdempotencyKeyRequired)
	}
	return key, nil
}
