package api

import (
	"net/http"
	"strconv"

	reqdto "pos-loyalty/internal/handler/dto/request"
	resdto "pos-loyalty/internal/handler/dto/response"
	"pos-loyalty/internal/handler/httperr"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accounts commands.AccountCommands
	ledger   commands.LedgerCommands
	balances queries.BalanceQueries
}

func NewAccountHandler(
	accounts commands.AccountCommands,
	ledger commands.LedgerCommands,
	balances queries.BalanceQueries,
) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		ledger:   ledger,
		balances: balances,
	}
}

// @Summary Enroll customer
// @Description Open a loyalty account at the lowest tier with an empty balance
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnrollRequest true "Enrollment"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /accounts [post]
func (h *AccountHandler) Enroll(c *gin.Context) {
	var req reqdto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	account, err := h.accounts.Enroll(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.Header("Location", "/api/accounts/"+account.ID().String()+"/balance")
	c.JSON(http.StatusCreated, resdto.FromAccount(account))
}

// @Summary Deactivate account
// @Tags accounts
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/deactivate [post]
func (h *AccountHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.accounts.Deactivate(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get balance
// @Description Current points, lifetime totals and tier, served from the balance snapshot
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/balance [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.balances.GetBalance(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Ledger history
// @Description Entries in sequence order, paged by cursor
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.LedgerPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/ledger [get]
func (h *AccountHandler) LedgerHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	page, err := h.balances.LedgerHistory(c.Request.Context(), id, c.Query("after"), limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerPage(page))
}

// @Summary Reconcile balance
// @Description Replay the ledger and compare it with the stored snapshot
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/reconcile [get]
func (h *AccountHandler) Reconcile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.balances.Reconcile(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileView(view))
}

// @Summary Manual adjustment
// @Description Post a signed adjust entry. The balance may not go negative.
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.PointsRequest true "Adjustment"
// @Success 201 {object} resdto.LedgerEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/adjustments [post]
func (h *AccountHandler) Adjust(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entry, err := h.ledger.Adjust(c.Request.Context(), id, req.Points, req.Reason)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEntry(*entry))
}

// @Summary Expire points
// @Description Expire up to the requested points; clamped to the current balance
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.PointsRequest true "Expiration"
// @Success 200 {object} resdto.ExpireResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id}/expirations [post]
func (h *AccountHandler) Expire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.ledger.Expire(c.Request.Context(), id, req.Points, req.Reason)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExpireResult(result))
}
