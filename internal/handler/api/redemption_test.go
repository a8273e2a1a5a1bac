//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/handler/api"
	resdto "pos-loyalty/internal/handler/dto/response"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/testing/httptest"
	commandsmock "pos-loyalty/internal/testing/mock/commands"
	queriesmock "pos-loyalty/internal/testing/mock/queries"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	mockQueries  *queriesmock.MockRedemptionQueries
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRedemptionQueries(s.mockCtrl)
	h := api.NewRedemptionHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/accounts/:id/redemptions", fakeAuth, h.Redeem)
	s.router.GET("/redemptions/:id", fakeAuth, h.Get)
	s.router.POST("/redemptions/use", fakeAuth, h.Use)
	s.router.POST("/redemptions/:id/cancel", fakeAuth, h.Cancel)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func issuedRedemption(accountID, rewardID, key uuid.UUID) *reward.Redemption {
	return reward.NewRedemption(uuid.New(), accountID, rewardID, 400, reward.Code("K7Q2M9XA"), key, uuid.New(), fixedNow)
}

func (s *RedemptionHandlerTestSuite) TestRedeem() {
	accountID := uuid.New()
	rewardID := uuid.New()
	key := uuid.New()
	url := "/accounts/" + accountID.String() + "/redemptions"
	body := map[string]any{"rewardId": rewardID.String()}
	headers := map[string]string{"Idempotency-Key": key.String()}
	expectedInput := commands.RedeemInput{AccountID: accountID, RewardID: rewardID, IdempotencyKey: key}

	s.Run("success: 201 for a new redemption", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), expectedInput).
			Return(&commands.RedeemResult{Redemption: issuedRedemption(accountID, rewardID, key), Balance: 600}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, bearerToken, headers)

		var resp resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Require().NotNil(resp.Redemption)
		s.Equal("K7Q2M9XA", resp.Redemption.Code)
		s.Equal("issued", resp.Redemption.Status)
		s.Equal(int64(600), resp.Balance)
		s.False(resp.Replayed)
	})

	s.Run("success: 200 for a replayed key", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), expectedInput).
			Return(&commands.RedeemResult{Redemption: issuedRedemption(accountID, rewardID, key), Balance: 600, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, bearerToken, headers)

		var resp resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Replayed)
	})

	s.Run("error: 400 without Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 for a non-UUID Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, bearerToken,
			map[string]string{"Idempotency-Key": "retry-1"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: maps business failures", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
			retryable      bool
		}{
			{"insufficient points", errs.ErrInsufficientPoints, http.StatusUnprocessableEntity, "Insufficient points", false},
			{"out of stock", errs.ErrOutOfStock, http.StatusUnprocessableEntity, "out of stock", false},
			{"tier not eligible", errs.ErrTierNotEligible, http.StatusUnprocessableEntity, "not eligible", false},
			{"inactive reward", errs.ErrRewardInactive, http.StatusUnprocessableEntity, "not active", false},
			{"unknown reward", errs.ErrRewardNotFound, http.StatusNotFound, "Reward not found", false},
			{"key reused", errs.ErrIdempotencyKeyReused, http.StatusConflict, "different request", false},
			{"code allocation", errs.ErrCodeAllocationFailed, http.StatusConflict, "please retry", true},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), expectedInput).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, bearerToken, headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)

				var resp struct {
					Detail map[string]bool `json:"detail"`
				}
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
				s.Equal(tc.retryable, resp.Detail["retryable"])
			})
		}
	})
}

func (s *RedemptionHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns the redemption", func() {
		view := &queries.RedemptionView{ID: id, Code: "K7Q2M9XA", Status: "used", PointsSpent: 400, IssuedAt: fixedNow, UpdatedAt: fixedNow}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/redemptions/"+id.String(), nil, bearerToken)

		var resp resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
		s.Equal("used", resp.Status)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrRedemptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/redemptions/"+id.String(), nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Redemption not found")
	})
}

func (s *RedemptionHandlerTestSuite) TestUse() {
	s.Run("success: returns the used redemption", func() {
		rd := issuedRedemption(uuid.New(), uuid.New(), uuid.New())
		s.Require().NoError(rd.Use(fixedNow))
		s.mockCommands.EXPECT().Use(gomock.Any(), "K7Q2M9XA").Return(rd, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/redemptions/use", map[string]any{"code": "K7Q2M9XA"}, bearerToken)

		var resp resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("used", resp.Status)
	})

	s.Run("error: 409 when already used", func() {
		s.mockCommands.EXPECT().Use(gomock.Any(), "K7Q2M9XA").Return(nil, errs.ErrInvalidRedemptionState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/redemptions/use", map[string]any{"code": "K7Q2M9XA"}, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "state")
	})

	s.Run("error: 400 without a code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/redemptions/use", map[string]any{}, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *RedemptionHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: returns the refund entry", func() {
		rd := issuedRedemption(uuid.New(), uuid.New(), uuid.New())
		s.Require().NoError(rd.Cancel(fixedNow))
		refund := sampleEntry(rd.AccountID(), 3, loyalty.KindAdjust, 400, 1000)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(&commands.CancelResult{Redemption: rd, Refund: refund}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/redemptions/"+id.String()+"/cancel", nil, bearerToken)

		var resp resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Redemption.Status)
		s.Equal(int64(400), resp.Refund.Delta)
		s.Equal("adjust", resp.Refund.Kind)
	})

	s.Run("error: 409 when not issued", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil, errs.ErrInvalidRedemptionState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/redemptions/"+id.String()+"/cancel", nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
