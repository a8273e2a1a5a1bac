package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-loyalty/internal/domain/operator"
	"pos-loyalty/internal/handler/api"
	"pos-loyalty/internal/handler/middleware"
	"pos-loyalty/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Account    *api.AccountHandler
	Sale       *api.SaleHandler
	Redemption *api.RedemptionHandler
	Tier       *api.TierHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogging(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck(cfg.Store.Driver))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := authMiddleware.RequireRoleAtLeast(operator.RoleManager)
	adminOnly := authMiddleware.RequireRoleAtLeast(operator.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		accounts := apiGroup.Group("/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Account.Enroll},
				{Method: http.MethodGet, Path: "/:id/balance", Handler: h.Account.GetBalance},
				{Method: http.MethodGet, Path: "/:id/ledger", Handler: h.Account.LedgerHistory},
				{Method: http.MethodGet, Path: "/:id/reconcile", Handler: h.Account.Reconcile, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Account.Deactivate, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPost, Path: "/:id/adjustments", Handler: h.Account.Adjust, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/:id/expirations", Handler: h.Account.Expire, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/:id/redemptions", Handler: h.Redemption.Redeem},
				{Method: http.MethodPost, Path: "/:id/tier/evaluate", Handler: h.Tier.Evaluate},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/sales", Handler: h.Sale.RecordSale},
			{Method: http.MethodGet, Path: "/tiers", Handler: h.Tier.ListTiers},
			{Method: http.MethodPost, Path: "/tiers/evaluate-all", Handler: h.Tier.EvaluateAll, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/rewards", Handler: h.Tier.ListRewards},
		})

		redemptions := apiGroup.Group("/redemptions")
		{
			addRoutes(redemptions, []route{
				{Method: http.MethodPost, Path: "/use", Handler: h.Redemption.Use},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Redemption.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Redemption.Cancel, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Liveness probe; reports which store backs the ledger
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(driver string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"store":  driver,
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
