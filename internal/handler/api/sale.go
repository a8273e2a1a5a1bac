package api

import (
	"net/http"

	reqdto "pos-loyalty/internal/handler/dto/request"
	resdto "pos-loyalty/internal/handler/dto/response"
	"pos-loyalty/internal/handler/httperr"
	"pos-loyalty/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	ledger commands.LedgerCommands
}

func NewSaleHandler(ledger commands.LedgerCommands) *SaleHandler {
	return &SaleHandler{ledger: ledger}
}

// @Summary Record sale
// @Description Credit points for a finalized sale and re-evaluate the tier. A repeated saleId returns the original entry.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaleRequest true "Finalized sale"
// @Success 201 {object} resdto.EarnResponse
// @Success 200 {object} resdto.EarnResponse "Replay of an already credited sale"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sales [post]
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req reqdto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.ledger.EarnFromSale(c.Request.Context(), req.ToEvent())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromEarnResult(result))
}
